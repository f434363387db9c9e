package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/retroenv/retrogolib/log"
)

const bytesPerSample = 4 // float32 mono

// Beeper plays the buzzer tone on the default audio device.
type Beeper struct {
	logger *log.Logger
	stream *toneStream
	player *oto.Player
}

// NewBeeper opens the audio device and starts a silent player. The tone is
// generated in the audio goroutine of the device.
func NewBeeper(logger *log.Logger) (*Beeper, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	stream := newToneStream()
	player := ctx.NewPlayer(stream)
	player.Play()

	logger.Debug("Audio device opened",
		log.Int("sample_rate", SampleRate),
		log.Int("frequency", ToneFrequency))

	return &Beeper{
		logger: logger,
		stream: stream,
		player: player,
	}, nil
}

// SetEnabled switches the tone on or off.
func (b *Beeper) SetEnabled(enabled bool) {
	b.stream.enabled.Store(enabled)
}

// Close stops the playback.
func (b *Beeper) Close() error {
	b.stream.enabled.Store(false)
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}

// toneStream is the sample source of the player. It produces silence while
// disabled.
type toneStream struct {
	enabled atomic.Bool
	wave    *SquareWave
}

func newToneStream() *toneStream {
	return &toneStream{
		wave: NewSquareWave(ToneFrequency, SampleRate, Volume),
	}
}

// Read fills p with little endian float32 samples.
func (s *toneStream) Read(p []byte) (int, error) {
	enabled := s.enabled.Load()
	samples := len(p) / bytesPerSample

	for i := range samples {
		var sample float32
		if enabled {
			sample = s.wave.Next()
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(sample))
	}
	return samples * bytesPerSample, nil
}
