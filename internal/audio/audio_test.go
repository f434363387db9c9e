package audio

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/retroenv/retrogolib/assert"
)

func TestSquareWave(t *testing.T) {
	// 4 samples per period
	wave := NewSquareWave(1, 4, 0.5)

	expected := []float32{0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, -0.5}
	for i, sample := range expected {
		assert.Equal(t, sample, wave.Next(), i)
	}
}

func TestToneStream(t *testing.T) {
	stream := newToneStream()
	buf := make([]byte, 4*bytesPerSample+3)

	n, err := stream.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 4*bytesPerSample, n)
	for i := range 4 {
		sample := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*bytesPerSample:]))
		assert.Equal(t, float32(0), sample)
	}

	stream.enabled.Store(true)
	_, err = stream.Read(buf)
	assert.NoError(t, err)
	sample := math.Float32frombits(binary.LittleEndian.Uint32(buf))
	assert.Equal(t, float32(Volume), sample)
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	recorder, err := CreateRecorder(path)
	assert.NoError(t, err)

	recorder.SetEnabled(true)
	recorder.SetEnabled(false)
	recorder.SetEnabled(true)
	assert.Equal(t, 3*SamplesPerTick, recorder.Samples())
	assert.NoError(t, recorder.Close())

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	decoder := wav.NewDecoder(file)
	assert.True(t, decoder.IsValidFile())
	buf, err := decoder.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, uint32(SampleRate), decoder.SampleRate)
	assert.Len(t, buf.Data, 3*SamplesPerTick)

	// second tick is silent
	for _, sample := range buf.Data[SamplesPerTick : 2*SamplesPerTick] {
		assert.Equal(t, 0, sample)
	}
	volume := float32(Volume)
	assert.Equal(t, int(volume*math.MaxInt16), buf.Data[0])
}

func TestCreateRecorder_Error(t *testing.T) {
	_, err := CreateRecorder(filepath.Join(t.TempDir(), "missing", "out.wav"))
	assert.Error(t, err)
}

type recordingGate struct {
	states []bool
}

func (g *recordingGate) SetEnabled(enabled bool) {
	g.states = append(g.states, enabled)
}

func TestMulti(t *testing.T) {
	first := &recordingGate{}
	second := &recordingGate{}
	gates := Multi{first, Mute{}, second}

	gates.SetEnabled(true)
	gates.SetEnabled(false)
	assert.Equal(t, []bool{true, false}, first.states)
	assert.Equal(t, []bool{true, false}, second.states)
}
