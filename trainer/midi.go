package trainer

import "strings"

type (
	MIDIModel Model

	midiState struct {
		context MIDIContext
		inputs  []MIDIInputDevice
		current MIDIInputDevice
	}

	// MIDIContext lists the MIDI input ports. Opened inputs deliver their note
	// on events to the Broker, never to the Model directly.
	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	MIDISupport int
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

func (m *Model) MIDI() *MIDIModel { return (*MIDIModel)(m) }

// OpenByPrefix opens the first input whose name starts with prefix. An empty
// prefix opens nothing.
func (m *MIDIModel) OpenByPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	m.refresh()
	for i, in := range m.midi.inputs {
		if strings.HasPrefix(in.String(), prefix) {
			return m.open(i)
		}
	}
	m.log.WithField("prefix", prefix).Info("no MIDI input matches")
	return false
}

// Current returns the name of the open input, or a status line telling why
// none is open.
func (m *MIDIModel) Current() string {
	p := m.printer
	if m.midi.current != nil {
		return p.Sprintf("MIDI input: %s", m.midi.current.String())
	}
	switch m.Support() {
	case MIDISupportNotCompiled:
		return p.Sprintf("MIDI: not compiled")
	case MIDISupportNoDriver:
		return p.Sprintf("MIDI: no driver")
	}
	return p.Sprintf("MIDI: off")
}

func (m *MIDIModel) Support() MIDISupport {
	if m.midi.context == nil {
		return MIDISupportNotCompiled
	}
	return m.midi.context.Support()
}

// NextInput cycles through the closed state and every available input port.
func (m *MIDIModel) NextInput() Action { return MakeAction((*midiNextInput)(m)) }

type midiNextInput MIDIModel

func (m *midiNextInput) Enabled() bool { return (*MIDIModel)(m).Support() == MIDISupported }
func (m *midiNextInput) Do() {
	mm := (*MIDIModel)(m)
	index := -1
	if m.midi.current != nil {
		for i, in := range m.midi.inputs {
			if in.String() == m.midi.current.String() {
				index = i
			}
		}
	}
	mm.refresh()
	if index+1 < len(m.midi.inputs) {
		mm.open(index + 1)
		return
	}
	if m.midi.current == nil {
		return // nothing open and nothing to open
	}
	mm.close()
	m.prefs.MIDIInput = ""
	(*Model)(m).settingsChanged()
	m.alerts.AddNamed("midi", m.printer.Sprintf("MIDI input closed"), Info)
}

func (m *MIDIModel) refresh() {
	if m.midi.context == nil {
		return
	}
	m.midi.inputs = m.midi.inputs[:0]
	for in := range m.midi.context.Inputs {
		m.midi.inputs = append(m.midi.inputs, in)
	}
}

func (m *MIDIModel) open(index int) bool {
	in := m.midi.inputs[index]
	m.close()
	if err := in.Open(); err != nil {
		m.log.WithError(err).WithField("input", in.String()).Warn("could not open MIDI input")
		m.alerts.AddNamed("midi", m.printer.Sprintf("Could not open MIDI input: %v", err), Error)
		return false
	}
	m.midi.current = in
	m.prefs.MIDIInput = in.String()
	(*Model)(m).settingsChanged()
	m.log.WithField("input", in.String()).Info("MIDI input opened")
	m.alerts.AddNamed("midi", m.printer.Sprintf("MIDI input: %s", in.String()), Info)
	return true
}

func (m *MIDIModel) close() {
	if m.midi.current == nil {
		return
	}
	if err := m.midi.current.Close(); err != nil {
		m.log.WithError(err).Debug("closing MIDI input failed")
	}
	m.midi.current = nil
}

// NullMIDIContext is used when the program is built without MIDI support.
type NullMIDIContext struct{}

func (m NullMIDIContext) Inputs(yield func(input MIDIInputDevice) bool) {}
func (m NullMIDIContext) Close()                                        {}
func (m NullMIDIContext) Support() MIDISupport                          { return MIDISupportNotCompiled }
