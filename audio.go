package pianoear

import "errors"

type (
	// AudioBuffer is a buffer of stereo frames, interleaved as [left, right].
	AudioBuffer [][2]float32

	// AudioContext starts voices on a sound device. Voices play
	// simultaneously; mixing is the context's business.
	AudioContext interface {
		Play(buf AudioBuffer) (Voice, error)
		SampleRate() int
		Close() error
	}

	// Voice is a single sound started by an AudioContext.
	Voice interface {
		IsPlaying() bool
		Stop()
	}
)

// ErrNoFreeVoice is returned by AudioContext.Play when all voices are busy.
// The sound is dropped.
var ErrNoFreeVoice = errors.New("no free voice")

// Duration returns the length of the buffer in seconds at the given rate.
func (b AudioBuffer) Duration(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(len(b)) / float64(sampleRate)
}

// Interleaved flattens the buffer into [l0, r0, l1, r1, ...], appending to
// dst.
func (b AudioBuffer) Interleaved(dst []float32) []float32 {
	for _, f := range b {
		dst = append(dst, f[0], f[1])
	}
	return dst
}
