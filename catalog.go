package pianoear

// Notes holds all 88 piano keys in ascending MIDI order, A0 to C8.
var Notes = GenerateNotes()

var (
	notesByMIDI = make(map[int]Note, NumNotes)
	notesByName = make(map[string]Note, NumNotes)
)

func init() {
	for _, n := range Notes {
		notesByMIDI[n.MIDI] = n
		notesByName[n.ShortName()] = n
	}
}

// GenerateNotes builds the note table from the MIDI range. It is pure: every
// call returns the same sequence.
func GenerateNotes() []Note {
	ret := make([]Note, 0, NumNotes)
	for midi := LowestMIDI; midi <= HighestMIDI; midi++ {
		ret = append(ret, Note{
			MIDI:      midi,
			Pitch:     PitchClassOf(midi),
			Octave:    OctaveOf(midi),
			Frequency: Frequency(midi),
			IsBlack:   IsBlackKey(midi),
		})
	}
	return ret
}

func NoteByMIDI(midi int) (Note, bool) {
	n, ok := notesByMIDI[midi]
	return n, ok
}

// NoteByName looks a note up by its short code, e.g. "A#3".
func NoteByName(name string) (Note, bool) {
	n, ok := notesByName[name]
	return n, ok
}

// Filter returns the notes in the selected octaves, in MIDI order. Black keys
// are included only if sharps is true.
func Filter(octaves OctaveSet, sharps bool) []Note {
	var ret []Note
	for _, n := range Notes {
		if n.IsBlack && !sharps {
			continue
		}
		if !octaves.Has(n.Octave) {
			continue
		}
		ret = append(ret, n)
	}
	return ret
}

// OctaveRange returns the lowest and the highest note of an octave on the
// keyboard. Subcontra starts at A0 and Fifth contains only C8.
func OctaveRange(o Octave) (first, last Note, ok bool) {
	for _, n := range Notes {
		if n.Octave != o {
			continue
		}
		if !ok {
			first, ok = n, true
		}
		last = n
	}
	return first, last, ok
}
