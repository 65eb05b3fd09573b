package trainer

type (
	// Action describes a user action that can be performed on the model, which
	// can be initiated by calling the Do() method. It is usually initiated by a
	// button press or a key binding. Action advertises whether it is enabled,
	// so UI can gray out buttons when the underlying action is not allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is called
	// when an action is performed.
	Doer interface {
		Do()
	}

	// Enabler is an interface that defines a single Enabled() method, which
	// is used by the UI to check if UI Action/Bool is enabled or not.
	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}

// start
type start Model

// Start begins a new training session: counters reset, the training screen
// shows and the first note plays.
func (m *Model) Start() Action { return MakeAction((*start)(m)) }
func (m *start) Enabled() bool { return m.screen == StartScreen }
func (m *start) Do()           { (*Model)(m).startSession() }

// stop
type stop Model

func (m *Model) Stop() Action { return MakeAction((*stop)(m)) }
func (m *stop) Enabled() bool { return m.screen == TrainingScreen }
func (m *stop) Do() {
	m.player.Stop()
	m.log.WithField("score", m.score).Info("training stopped")
	m.screen = StartScreen
}

// next
type next Model

// Next draws a new note. It is enabled only after the current note has been
// answered.
func (m *Model) Next() Action { return MakeAction((*next)(m)) }
func (m *next) Enabled() bool { return m.screen == TrainingScreen && m.answered }
func (m *next) Do()           { (*Model)(m).drawNote() }

// repeat
type repeat Model

// Repeat replays the note being guessed, not the last key clicked.
func (m *Model) Repeat() Action { return MakeAction((*repeat)(m)) }
func (m *repeat) Enabled() bool { return m.screen == TrainingScreen && m.hasTarget }
func (m *repeat) Do() {
	if _, _, err := m.player.RepeatCurrentNote(); err != nil {
		(*Model)(m).playbackFailed(err)
	}
}

// showOctaves
type showOctaves Model

// ShowOctaves opens the octave reference, remembering the screen to go back
// to.
func (m *Model) ShowOctaves() Action { return MakeAction((*showOctaves)(m)) }
func (m *showOctaves) Enabled() bool { return m.screen != OctavesScreen }
func (m *showOctaves) Do() {
	m.previous, m.hasPrevious = m.screen, true
	m.screen = OctavesScreen
}

// back
type back Model

func (m *Model) Back() Action { return MakeAction((*back)(m)) }
func (m *back) Enabled() bool { return m.screen == OctavesScreen }
func (m *back) Do() {
	if m.hasPrevious {
		m.screen = m.previous
	} else {
		m.screen = StartScreen
	}
	m.hasPrevious = false
}

// quit
type quit Model

// Quit asks the GUI to close its window; the model is closed when the window
// is gone.
func (m *Model) Quit() Action { return MakeAction((*quit)(m)) }
func (m *quit) Do() {
	if !TrySend(m.broker.CloseGUI, struct{}{}) {
		m.log.Debug("quit already requested")
	}
}
