package trainer

import "github.com/pianoear/pianoear"

type (
	Bool struct {
		BoolData
	}

	BoolData interface {
		Value() bool
		Enabled() bool
		setValue(bool)
	}

	Sharps Model

	// OctaveSelected tells whether notes of one octave are drawn.
	OctaveSelected struct {
		m      *Model
		octave pianoear.Octave
	}
)

func (v Bool) Toggle() {
	v.Set(!v.Value())
}

func (v Bool) Set(value bool) {
	if v.Enabled() && v.Value() != value {
		v.setValue(value)
	}
}

// Model methods

func (m *Model) Sharps() *Sharps { return (*Sharps)(m) }
func (m *Model) OctaveSelected(o pianoear.Octave) OctaveSelected {
	return OctaveSelected{m: m, octave: o}
}

// Sharps methods

func (m *Sharps) Bool() Bool    { return Bool{m} }
func (m *Sharps) Value() bool   { return m.sharps }
func (m *Sharps) Enabled() bool { return true }
func (m *Sharps) setValue(val bool) {
	m.sharps = val
	(*Model)(m).settingsChanged()
}

// OctaveSelected methods

func (o OctaveSelected) Bool() Bool    { return Bool{o} }
func (o OctaveSelected) Value() bool   { return o.m.octaves.Has(o.octave) }
func (o OctaveSelected) Enabled() bool { return o.octave >= 0 && o.octave < pianoear.NumOctaves }
func (o OctaveSelected) setValue(val bool) {
	if val {
		o.m.octaves = o.m.octaves.With(o.octave)
	} else {
		o.m.octaves = o.m.octaves.Without(o.octave)
	}
	o.m.settingsChanged()
}
