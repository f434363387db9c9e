package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	recorderBitDepth = 16
	wavFormatPCM     = 1
)

// Recorder writes the buzzer output to a 16 bit mono WAV stream. Every call
// of SetEnabled appends the samples of one tick, either tone or silence.
type Recorder struct {
	encoder *wav.Encoder
	closer  io.Closer
	wave    *SquareWave
	buffer  *audio.IntBuffer
	samples int
	err     error
}

// NewRecorder returns a recorder that writes to the given stream. The WAV
// header is finalized by Close.
func NewRecorder(w io.WriteSeeker) *Recorder {
	return &Recorder{
		encoder: wav.NewEncoder(w, SampleRate, recorderBitDepth, 1, wavFormatPCM),
		wave:    NewSquareWave(ToneFrequency, SampleRate, Volume),
		buffer: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  SampleRate,
			},
			Data:           make([]int, SamplesPerTick),
			SourceBitDepth: recorderBitDepth,
		},
	}
}

// CreateRecorder creates the file at the given path and returns a recorder
// that writes to it. Close also closes the file.
func CreateRecorder(path string) (*Recorder, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file %s: %w", path, err)
	}

	r := NewRecorder(file)
	r.closer = file
	return r, nil
}

// SetEnabled appends one tick of samples.
func (r *Recorder) SetEnabled(enabled bool) {
	if r.err != nil {
		return
	}

	for i := range r.buffer.Data {
		var sample int
		if enabled {
			sample = int(r.wave.Next() * math.MaxInt16)
		}
		r.buffer.Data[i] = sample
	}

	if err := r.encoder.Write(r.buffer); err != nil {
		r.err = fmt.Errorf("writing samples: %w", err)
		return
	}
	r.samples += len(r.buffer.Data)
}

// Samples returns the number of samples written.
func (r *Recorder) Samples() int {
	return r.samples
}

// Close finalizes the WAV header and returns the first write error.
func (r *Recorder) Close() error {
	err := r.err
	if closeErr := r.encoder.Close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("closing wav encoder: %w", closeErr))
	}
	if r.closer != nil {
		if closeErr := r.closer.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing file: %w", closeErr))
		}
	}
	return err
}
