package oto

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/pianoear/pianoear"
)

const (
	DefaultSampleRate = 44100
	// DefaultVoices is the number of sounds that can play at the same time,
	// enough for a fast glissando over the whole keyboard.
	DefaultVoices = 32
)

type (
	// OtoContext plays pianoear.AudioBuffers with oto. Each sound gets its
	// own oto player; oto mixes the players.
	OtoContext struct {
		context    *oto.Context
		sampleRate int
		maxVoices  int

		mu     sync.Mutex
		voices []*OtoVoice
	}

	OtoVoice struct {
		player *oto.Player
	}
)

// NewContext opens the default sound device. It blocks until the device is
// ready.
func NewContext(sampleRate, maxVoices int) (*OtoContext, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if maxVoices <= 0 {
		maxVoices = DefaultVoices
	}
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{context: context, sampleRate: sampleRate, maxVoices: maxVoices}, nil
}

func (c *OtoContext) SampleRate() int { return c.sampleRate }

// Play starts buf on a new voice. When all voices are busy, the sound is
// dropped and pianoear.ErrNoFreeVoice returned.
func (c *OtoContext) Play(buf pianoear.AudioBuffer) (pianoear.Voice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.voices = pruneVoices(c.voices)
	if len(c.voices) >= c.maxVoices {
		return nil, pianoear.ErrNoFreeVoice
	}
	pcm := FloatBufferTo16BitLE(buf.Interleaved(nil), nil)
	v := &OtoVoice{player: c.context.NewPlayer(bytes.NewReader(pcm))}
	v.player.Play()
	c.voices = append(c.voices, v)
	return v, nil
}

// StopAll silences every voice.
func (c *OtoContext) StopAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.voices {
		v.Stop()
	}
	c.voices = c.voices[:0]
}

func (c *OtoContext) Close() error {
	c.StopAll()
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

func (v *OtoVoice) IsPlaying() bool { return v.player.IsPlaying() }
func (v *OtoVoice) Stop()           { v.player.Pause() }

type playing interface{ IsPlaying() bool }

// pruneVoices drops finished voices in place.
func pruneVoices[T playing](voices []T) []T {
	n := 0
	for _, v := range voices {
		if v.IsPlaying() {
			voices[n] = v
			n++
		}
	}
	clear(voices[n:])
	return voices[:n]
}
