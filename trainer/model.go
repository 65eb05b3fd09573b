package trainer

import (
	"errors"
	"io/fs"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/pianoear/pianoear"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

type (
	// Model is the state of the ear trainer. It is owned by the GUI goroutine;
	// other goroutines talk to it only through the Broker.
	Model struct {
		screen      Screen
		previous    Screen
		hasPrevious bool

		player    *Player
		target    pianoear.Note
		hasTarget bool
		answered  bool
		score     Score
		status    Status

		octaves pianoear.OctaveSet
		sharps  bool

		records   RecordStore
		prefs     Preferences
		prefsPath string
		debounced func(f func())

		midi    midiState
		alerts  Alerts
		printer *message.Printer
		session string
		log     *logrus.Entry
		broker  *Broker
	}

	Config struct {
		Player          *Player
		Records         RecordStore
		Preferences     Preferences
		PreferencesPath string
		MIDI            MIDIContext
		Broker          *Broker
	}

	Screen int

	// Score holds the counters of the current session. Best survives
	// sessions and restarts.
	Score struct {
		Correct int
		Wrong   int
		Streak  int
		Best    int
	}

	// Status is the outcome of the last round, shown under the keyboard.
	Status struct {
		Kind   StatusKind
		Target pianoear.Note
		Chosen pianoear.Note
	}

	StatusKind int
)

const (
	StartScreen Screen = iota
	TrainingScreen
	OctavesScreen
)

const (
	StatusNone StatusKind = iota
	StatusAwaiting
	StatusCorrect
	StatusWrong
	StatusNoOctaves
)

const preferencesSaveDelay = 500 * time.Millisecond

func NewModel(c Config) *Model {
	m := &Model{
		player:    c.Player,
		records:   c.Records,
		prefs:     c.Preferences,
		prefsPath: c.PreferencesPath,
		debounced: debounce.New(preferencesSaveDelay),
		broker:    c.Broker,
		printer:   NewPrinter(c.Preferences.Language),
		log:       logrus.NewEntry(logrus.StandardLogger()),
	}
	if m.broker == nil {
		m.broker = NewBroker()
	}
	m.midi.context = c.MIDI
	m.octaves = c.Preferences.OctaveSet()
	m.sharps = c.Preferences.Sharps
	best, err := m.records.Load()
	if err != nil {
		level := logrus.WarnLevel
		if errors.Is(err, fs.ErrNotExist) {
			level = logrus.DebugLevel
		}
		m.log.WithError(err).WithField("path", m.records.Path).Log(level, "starting with no record")
	}
	m.score.Best = best
	return m
}

func (m *Model) Screen() Screen            { return m.screen }
func (m *Model) Score() Score              { return m.score }
func (m *Model) Status() Status            { return m.status }
func (m *Model) Alerts() *Alerts           { return &m.alerts }
func (m *Model) Printer() *message.Printer { return m.printer }
func (m *Model) Broker() *Broker           { return m.broker }
func (m *Model) Preferences() Preferences  { return m.prefs }
func (m *Model) Answered() bool            { return m.answered }

func (m *Model) Target() (pianoear.Note, bool) { return m.target, m.hasTarget }

// Percent is the share of correct answers, rounded down; 0 before any answer.
func (s Score) Percent() int {
	total := s.Correct + s.Wrong
	if total == 0 {
		return 0
	}
	return s.Correct * 100 / total
}

// SelectNote handles a note picked on the keyboard, from a MIDI keyboard or
// with computer keys. The first pick of a round is graded; later picks just
// sound. While a round waits for its answer, the octave reference is silent.
func (m *Model) SelectNote(n pianoear.Note) {
	if m.screen != TrainingScreen {
		if m.roundOpen() {
			m.log.WithField("chosen", n.ShortName()).Debug("reference keyboard silent until the round is answered")
			return
		}
		m.PreviewNote(n)
		return
	}
	if m.answered {
		m.PreviewNote(n)
		return
	}
	if !m.hasTarget {
		return
	}
	log := m.log.WithFields(logrus.Fields{"target": m.target.ShortName(), "chosen": n.ShortName()})
	if n.MIDI == m.target.MIDI {
		if err := m.player.PlayNote(n); err != nil {
			m.playbackFailed(err)
		}
		m.score.Correct++
		m.score.Streak++
		if m.score.Streak > m.score.Best {
			m.score.Best = m.score.Streak
			m.saveRecord()
		}
		m.status = Status{Kind: StatusCorrect, Target: m.target, Chosen: n}
		log.Debug("correct answer")
	} else {
		// a wrong pick stays silent
		m.score.Wrong++
		m.score.Streak = 0
		m.status = Status{Kind: StatusWrong, Target: m.target, Chosen: n}
		log.Debug("wrong answer")
	}
	m.answered = true
}

// PreviewNote plays a note without grading it.
func (m *Model) PreviewNote(n pianoear.Note) {
	if err := m.player.PlayNote(n); err != nil {
		m.playbackFailed(err)
	}
}

// ProcessMsg handles a message received from the Broker.
func (m *Model) ProcessMsg(msg MsgToModel) {
	switch e := msg.Data.(type) {
	case MIDINoteOn:
		if e.Velocity == 0 {
			return
		}
		if n, ok := pianoear.NoteByMIDI(e.Key); ok {
			m.SelectNote(n)
		}
	case func():
		e()
	default:
		m.log.Debugf("unknown message %T", msg.Data)
	}
}

// SetWindowSize remembers the window size, in device independent pixels, for
// the next start.
func (m *Model) SetWindowSize(width, height int) {
	if m.prefs.Window.Width == width && m.prefs.Window.Height == height {
		return
	}
	m.prefs.Window.Width, m.prefs.Window.Height = width, height
	m.settingsChanged()
}

func (m *Model) SetWindowMaximized(maximized bool) {
	if m.prefs.Window.Maximized == maximized {
		return
	}
	m.prefs.Window.Maximized = maximized
	m.settingsChanged()
}

// Close persists the record and the preferences and releases the audio and
// MIDI devices.
func (m *Model) Close() {
	m.debounced(func() {}) // drop the pending write, it is done below
	m.saveRecord()
	if err := SavePreferences(m.prefsPath, m.prefs); err != nil {
		m.log.WithError(err).Warn("could not save preferences")
	}
	if m.midi.context != nil {
		(*MIDIModel)(m).close()
		m.midi.context.Close()
	}
	if m.player != nil {
		if err := m.player.Close(); err != nil {
			m.log.WithError(err).Debug("closing audio failed")
		}
	}
	m.log.WithField("best", m.score.Best).Info("trainer closed")
}

func (m *Model) startSession() {
	m.score = Score{Best: m.score.Best}
	m.session = uuid.NewString()
	m.log = logrus.WithField("session", m.session)
	m.hasTarget, m.answered = false, false
	m.status = Status{}
	m.screen = TrainingScreen
	m.log.WithFields(logrus.Fields{"octaves": m.octaves.Slice(), "sharps": m.sharps}).Info("training started")
	m.drawNote()
}

// drawNote starts a new round with a random note from the selected octaves.
// If nothing can be drawn, the round state is left as it was.
func (m *Model) drawNote() {
	candidates := pianoear.Filter(m.octaves, m.sharps)
	if len(candidates) == 0 {
		m.status = Status{Kind: StatusNoOctaves}
		return
	}
	n, err := m.player.PlayRandomNote(candidates)
	if err != nil {
		m.playbackFailed(err)
		return
	}
	m.target, m.hasTarget = n, true
	m.answered = false
	m.status = Status{Kind: StatusAwaiting, Target: n}
	m.log.WithField("note", n.ShortName()).Debug("note drawn")
}

// roundOpen tells whether a drawn note is still waiting for its answer, also
// while the octave reference is shown on top of the training screen.
func (m *Model) roundOpen() bool {
	inTraining := m.screen == TrainingScreen || m.hasPrevious && m.previous == TrainingScreen
	return inTraining && m.hasTarget && !m.answered
}

func (m *Model) playbackFailed(err error) {
	m.log.WithError(err).Error("playback failed")
	m.alerts.AddNamed("playback", m.printer.Sprintf("Could not play the note: %v", err), Error)
}

func (m *Model) saveRecord() {
	if err := m.records.Save(m.score.Best); err != nil {
		m.log.WithError(err).Debug("could not save the record")
	}
}

// settingsChanged writes the preferences a moment after the last change. The
// write runs on the debouncer's goroutine with a copy of the preferences; a
// failure is reported back through the Broker.
func (m *Model) settingsChanged() {
	m.prefs.Sharps = m.sharps
	m.prefs.SetOctaveSet(m.octaves)
	prefs := m.prefs
	prefs.Octaves = append([]int(nil), m.prefs.Octaves...)
	path := m.prefsPath
	log := m.log
	broker := m.broker
	m.debounced(func() {
		if err := SavePreferences(path, prefs); err != nil {
			log.WithError(err).Warn("could not save preferences")
			TrySend(broker.ToModel, MsgToModel{Data: func() {
				m.alerts.AddNamed("preferences", m.printer.Sprintf("Could not save preferences: %v", err), Warning)
			}})
		}
	})
}
