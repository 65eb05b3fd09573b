package pianoear

import (
	"fmt"
	"math"
)

type (
	// Note is one key of an 88-key piano. Notes are values; the full set is
	// generated once into Notes and never modified.
	Note struct {
		MIDI      int
		Pitch     PitchClass
		Octave    Octave
		Frequency float64
		IsBlack   bool
	}

	// PitchClass is the position of a note within its octave, C = 0.
	PitchClass int

	// Octave is one of the nine named piano octaves. The number matches the
	// octave digit of the short note code, so C4 is in First.
	Octave int

	// OctaveSet is a set of octaves, one bit per octave.
	OctaveSet uint16
)

const (
	LowestMIDI   = 21  // A0
	HighestMIDI  = 108 // C8
	NumNotes     = HighestMIDI - LowestMIDI + 1
	NumWhiteKeys = 52
	NumBlackKeys = NumNotes - NumWhiteKeys

	// ConcertA is the MIDI number of A4, tuned to 440 Hz.
	ConcertA     = 69
	ConcertAFreq = 440.0
)

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const (
	Subcontra Octave = iota
	Contra
	Great
	Small
	First
	Second
	Third
	Fourth
	Fifth
	NumOctaves = 9
)

var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// solfege names are what the octave reference shows next to each range
var pitchClassSolfege = [12]string{"Do", "Do#", "Re", "Re#", "Mi", "Fa", "Fa#", "Sol", "Sol#", "La", "La#", "Si"}

var octaveNames = [NumOctaves]string{
	"Subcontra octave",
	"Contra octave",
	"Great octave",
	"Small octave",
	"First octave",
	"Second octave",
	"Third octave",
	"Fourth octave",
	"Fifth octave",
}

func (p PitchClass) String() string  { return pitchClassNames[p%12] }
func (p PitchClass) Solfege() string { return pitchClassSolfege[p%12] }
func (p PitchClass) IsBlack() bool {
	switch p {
	case CSharp, DSharp, FSharp, GSharp, ASharp:
		return true
	}
	return false
}

func (o Octave) String() string {
	if o < 0 || o >= NumOctaves {
		return fmt.Sprintf("Octave(%d)", int(o))
	}
	return octaveNames[o]
}

// ShortName returns the compact note code, e.g. "C4" or "A#3". Sample files
// are named after it.
func (n Note) ShortName() string {
	return fmt.Sprintf("%s%d", n.Pitch, int(n.Octave))
}

// SampleFile returns the file name of the sample of n with the given
// extension, which should not include the dot.
func (n Note) SampleFile(ext string) string {
	return n.ShortName() + "." + ext
}

func (n Note) String() string { return n.ShortName() }

// Frequency returns the equal-tempered frequency of a MIDI note number in Hz.
func Frequency(midi int) float64 {
	return ConcertAFreq * math.Pow(2, float64(midi-ConcertA)/12)
}

// OctaveOf returns the named octave of a MIDI note number. A0..B0 fall in
// Subcontra; everything above C8 is clamped to Fifth.
func OctaveOf(midi int) Octave {
	o := (midi - 12) / 12
	if midi < 12 || o < 0 {
		return Subcontra
	}
	if o >= NumOctaves {
		return Fifth
	}
	return Octave(o)
}

func PitchClassOf(midi int) PitchClass {
	return PitchClass(((midi % 12) + 12) % 12)
}

func IsBlackKey(midi int) bool {
	return PitchClassOf(midi).IsBlack()
}

// OctaveSet methods

func Octaves(octaves ...Octave) OctaveSet {
	var s OctaveSet
	for _, o := range octaves {
		s = s.With(o)
	}
	return s
}

func (s OctaveSet) Has(o Octave) bool { return o >= 0 && o < NumOctaves && s&(1<<o) != 0 }

func (s OctaveSet) With(o Octave) OctaveSet {
	if o < 0 || o >= NumOctaves {
		return s
	}
	return s | 1<<o
}

func (s OctaveSet) Without(o Octave) OctaveSet { return s &^ (1 << o) }

func (s OctaveSet) Slice() []Octave {
	var ret []Octave
	for o := Subcontra; o < NumOctaves; o++ {
		if s.Has(o) {
			ret = append(ret, o)
		}
	}
	return ret
}
