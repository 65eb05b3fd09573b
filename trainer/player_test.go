package trainer_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	fakeVoice struct {
		playing bool
	}

	// fakeAudio records what was played. Each buffer produced by fakeSamples
	// carries the MIDI number of its note in the first frame.
	fakeAudio struct {
		played []int
		voices []*fakeVoice
		full   bool
		closed bool
	}

	fakeSamples struct {
		loads   map[string]int
		missing map[string]bool
	}
)

func (v *fakeVoice) IsPlaying() bool { return v.playing }
func (v *fakeVoice) Stop()           { v.playing = false }

func (a *fakeAudio) Play(buf pianoear.AudioBuffer) (pianoear.Voice, error) {
	if a.full {
		return nil, pianoear.ErrNoFreeVoice
	}
	a.played = append(a.played, int(buf[0][0]))
	v := &fakeVoice{playing: true}
	a.voices = append(a.voices, v)
	return v, nil
}

func (a *fakeAudio) SampleRate() int { return 44100 }

func (a *fakeAudio) Close() error {
	a.closed = true
	return nil
}

func (a *fakeAudio) playing() int {
	ret := 0
	for _, v := range a.voices {
		if v.playing {
			ret++
		}
	}
	return ret
}

func newFakeSamples(missing ...string) *fakeSamples {
	s := &fakeSamples{loads: map[string]int{}, missing: map[string]bool{}}
	for _, m := range missing {
		s.missing[m] = true
	}
	return s
}

func (s *fakeSamples) Load(n pianoear.Note) (pianoear.AudioBuffer, error) {
	s.loads[n.ShortName()]++
	if s.missing[n.ShortName()] {
		return nil, fmt.Errorf("open %s: %w", n.SampleFile("wav"), fs.ErrNotExist)
	}
	return pianoear.AudioBuffer{{float32(n.MIDI), 0}, {0, 0}}, nil
}

func TestPlayNoteCachesSamples(t *testing.T) {
	audio, samples := &fakeAudio{}, newFakeSamples()
	p := trainer.NewPlayer(samples, audio)
	c4 := note(t, "C4")
	for i := 0; i < 3; i++ {
		require.NoError(t, p.PlayNote(c4))
	}
	assert.Equal(t, 1, samples.loads["C4"])
	assert.Equal(t, []int{60, 60, 60}, audio.played)
	assert.Equal(t, 3, audio.playing(), "sounds should overlap")
}

func TestPlayRandomNoteFromSingleCandidate(t *testing.T) {
	audio := &fakeAudio{}
	p := trainer.NewPlayer(newFakeSamples(), audio)
	c4 := note(t, "C4")
	for i := 0; i < 20; i++ {
		n, err := p.PlayRandomNote([]pianoear.Note{c4})
		require.NoError(t, err)
		assert.Equal(t, c4, n)
	}
	current, ok := p.CurrentNote()
	assert.True(t, ok)
	assert.Equal(t, c4, current)
}

func TestPlayRandomNoteWithoutCandidates(t *testing.T) {
	p := trainer.NewPlayer(newFakeSamples(), &fakeAudio{})
	_, err := p.PlayRandomNote(nil)
	assert.Error(t, err)
	_, ok := p.CurrentNote()
	assert.False(t, ok)
}

func TestSeededPlayersAgree(t *testing.T) {
	candidates := pianoear.Filter(pianoear.Octaves(pianoear.Small, pianoear.First), true)
	a := trainer.NewPlayer(newFakeSamples(), &fakeAudio{})
	b := trainer.NewPlayer(newFakeSamples(), &fakeAudio{})
	a.Seed(42)
	b.Seed(42)
	for i := 0; i < 10; i++ {
		na, err := a.PlayRandomNote(candidates)
		require.NoError(t, err)
		nb, err := b.PlayRandomNote(candidates)
		require.NoError(t, err)
		assert.Equal(t, na, nb)
	}
}

func TestRepeatCurrentNotePlaysTheTarget(t *testing.T) {
	audio := &fakeAudio{}
	p := trainer.NewPlayer(newFakeSamples(), audio)
	_, ok, err := p.RepeatCurrentNote()
	require.NoError(t, err)
	assert.False(t, ok, "nothing to repeat before the first random note")
	assert.Empty(t, audio.played)

	c4, g2 := note(t, "C4"), note(t, "G2")
	_, err = p.PlayRandomNote([]pianoear.Note{c4})
	require.NoError(t, err)
	require.NoError(t, p.PlayNote(g2))
	n, ok, err := p.RepeatCurrentNote()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, c4, n)
	assert.Equal(t, []int{60, 43, 60}, audio.played)
}

func TestMissingSample(t *testing.T) {
	samples := newFakeSamples("A0")
	p := trainer.NewPlayer(samples, &fakeAudio{})
	err := p.PlayNote(note(t, "A0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, trainer.ErrSampleNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// not cached, so every attempt looks again
	_ = p.PlayNote(note(t, "A0"))
	assert.Equal(t, 2, samples.loads["A0"])
}

func TestMissingRandomNoteIsNotCurrent(t *testing.T) {
	p := trainer.NewPlayer(newFakeSamples("C8"), &fakeAudio{})
	_, err := p.PlayRandomNote([]pianoear.Note{note(t, "C8")})
	assert.True(t, errors.Is(err, trainer.ErrSampleNotFound))
	_, ok := p.CurrentNote()
	assert.False(t, ok)
}

func TestFullVoicePoolDropsTheSound(t *testing.T) {
	audio := &fakeAudio{full: true}
	p := trainer.NewPlayer(newFakeSamples(), audio)
	assert.NoError(t, p.PlayNote(note(t, "C4")))
	assert.Empty(t, audio.played)
}

func TestStopSilencesEverything(t *testing.T) {
	audio := &fakeAudio{}
	p := trainer.NewPlayer(newFakeSamples(), audio)
	require.NoError(t, p.PlayNote(note(t, "C4")))
	require.NoError(t, p.PlayNote(note(t, "E4")))
	require.Equal(t, 2, audio.playing())
	p.Stop()
	assert.Zero(t, audio.playing())
	require.NoError(t, p.Close())
	assert.True(t, audio.closed)
}
