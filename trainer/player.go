package trainer

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"time"

	"github.com/pianoear/pianoear"
	"github.com/sirupsen/logrus"
)

// ErrSampleNotFound is returned when the sample file of a note does not
// exist. Playback of that note fails; nothing retries it.
var ErrSampleNotFound = errors.New("sample not found")

type (
	// Player plays note samples. Decoded samples are kept for the lifetime of
	// the player; there are only 88 of them.
	Player struct {
		source  SampleSource
		context pianoear.AudioContext
		cache   map[string]pianoear.AudioBuffer
		voices  []pianoear.Voice
		current pianoear.Note
		hasCurr bool
		rand    *rand.Rand
	}

	// SampleSource decodes the sample of a note. A missing sample must be
	// reported with an error wrapping fs.ErrNotExist.
	SampleSource interface {
		Load(n pianoear.Note) (pianoear.AudioBuffer, error)
	}
)

func NewPlayer(source SampleSource, context pianoear.AudioContext) *Player {
	return &Player{
		source:  source,
		context: context,
		cache:   make(map[string]pianoear.AudioBuffer, pianoear.NumNotes),
		rand:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
}

// Seed makes the random note choice reproducible.
func (p *Player) Seed(seed uint64) {
	p.rand = rand.New(rand.NewPCG(seed, seed))
}

// PlayNote plays the sample of n over anything already playing. If every
// voice is busy, the sound is dropped without an error.
func (p *Player) PlayNote(n pianoear.Note) error {
	buf, err := p.sample(n)
	if err != nil {
		return err
	}
	v, err := p.context.Play(buf)
	if errors.Is(err, pianoear.ErrNoFreeVoice) {
		logrus.WithField("note", n.ShortName()).Debug("all voices busy, note dropped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not play %s: %w", n, err)
	}
	p.voices = append(p.voices, v)
	p.pruneVoices()
	return nil
}

// PlayRandomNote picks one of candidates uniformly, plays it and makes it the
// current note.
func (p *Player) PlayRandomNote(candidates []pianoear.Note) (pianoear.Note, error) {
	if len(candidates) == 0 {
		return pianoear.Note{}, errors.New("no candidate notes")
	}
	n := candidates[p.rand.IntN(len(candidates))]
	if err := p.PlayNote(n); err != nil {
		return n, err
	}
	p.current, p.hasCurr = n, true
	return n, nil
}

// RepeatCurrentNote replays the note picked by the last PlayRandomNote.
// Notes played with PlayNote never become current.
func (p *Player) RepeatCurrentNote() (pianoear.Note, bool, error) {
	if !p.hasCurr {
		return pianoear.Note{}, false, nil
	}
	return p.current, true, p.PlayNote(p.current)
}

func (p *Player) CurrentNote() (pianoear.Note, bool) { return p.current, p.hasCurr }

// Stop silences everything started by this player.
func (p *Player) Stop() {
	for _, v := range p.voices {
		v.Stop()
	}
	p.voices = p.voices[:0]
}

func (p *Player) Close() error {
	p.Stop()
	return p.context.Close()
}

func (p *Player) sample(n pianoear.Note) (pianoear.AudioBuffer, error) {
	code := n.ShortName()
	if buf, ok := p.cache[code]; ok {
		return buf, nil
	}
	buf, err := p.source.Load(n)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrSampleNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	p.cache[code] = buf
	return buf, nil
}

func (p *Player) pruneVoices() {
	n := 0
	for _, v := range p.voices {
		if v.IsPlaying() {
			p.voices[n] = v
			n++
		}
	}
	clear(p.voices[n:])
	p.voices = p.voices[:n]
}
