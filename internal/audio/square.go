// Package audio contains the audio gates that are switched by the sound
// timer: a live beeper, a WAV file recorder and helpers to combine them.
package audio

// Tone parameters of the buzzer.
const (
	SampleRate    = 44100
	ToneFrequency = 220
	Volume        = 0.25

	// SamplesPerTick is the number of samples that cover one 60 Hz tick.
	SamplesPerTick = SampleRate / 60
)

// Gate switches a tone on and off.
type Gate interface {
	SetEnabled(enabled bool)
}

// SquareWave generates a square wave with a 50% duty cycle.
type SquareWave struct {
	phaseInc float32
	phase    float32
	volume   float32
}

// NewSquareWave returns a square wave generator for the given frequency,
// sample rate and volume.
func NewSquareWave(frequency, sampleRate int, volume float32) *SquareWave {
	return &SquareWave{
		phaseInc: float32(frequency) / float32(sampleRate),
		volume:   volume,
	}
}

// Next returns the next sample in the range [-volume, volume].
func (w *SquareWave) Next() float32 {
	sample := -w.volume
	if w.phase <= 0.5 {
		sample = w.volume
	}

	w.phase += w.phaseInc
	if w.phase >= 1 {
		w.phase--
	}
	return sample
}
