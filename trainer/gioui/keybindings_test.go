package gioui

import (
	"testing"

	"gioui.org/io/key"
	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	silentVoice  struct{}
	silentAudio  struct{ played []string }
	silentSource struct{}
)

func (silentVoice) IsPlaying() bool { return false }
func (silentVoice) Stop()           {}

func (a *silentAudio) Play(buf pianoear.AudioBuffer) (pianoear.Voice, error) {
	n, _ := pianoear.NoteByMIDI(int(buf[0][0]))
	a.played = append(a.played, n.ShortName())
	return silentVoice{}, nil
}
func (a *silentAudio) SampleRate() int { return 44100 }
func (a *silentAudio) Close() error    { return nil }

func (silentSource) Load(n pianoear.Note) (pianoear.AudioBuffer, error) {
	return pianoear.AudioBuffer{{float32(n.MIDI), 0}}, nil
}

// newTestTrainer drills the fifth octave only, so C8 is always the target.
func newTestTrainer(t *testing.T) (*Trainer, *silentAudio) {
	t.Helper()
	audio := &silentAudio{}
	prefs := trainer.DefaultPreferences()
	prefs.Octaves = []int{int(pianoear.Fifth)}
	model := trainer.NewModel(trainer.Config{
		Player:      trainer.NewPlayer(silentSource{}, audio),
		Preferences: prefs,
	})
	return NewTrainer(model), audio
}

func press(name key.Name) key.Event {
	return key.Event{Name: name, State: key.Press}
}

func TestDefaultKeyBindings(t *testing.T) {
	for name, action := range map[key.Name]string{
		key.NameReturn: "StartOrNext",
		key.NameEnter:  "StartOrNext",
		key.NameSpace:  "Repeat",
		key.NameEscape: "BackOrStop",
		"O":            "ShowOctaves",
		"A":            "Note0",
		"K":            "Note12",
	} {
		assert.Equal(t, action, keyBindingMap[press(name)], "key %q", name)
	}
}

func TestKeysDriveATrainingRound(t *testing.T) {
	tr, audio := newTestTrainer(t)
	m := tr.Model

	tr.KeyEvent(press(key.NameReturn))
	require.Equal(t, trainer.TrainingScreen, m.Screen())
	assert.Equal(t, []string{"C8"}, audio.played)

	tr.KeyEvent(press(key.NameSpace))
	assert.Equal(t, []string{"C8", "C8"}, audio.played)

	tr.KeyEvent(press("A"))
	assert.Equal(t, trainer.StatusCorrect, m.Status().Kind)
	assert.Equal(t, 1, m.Score().Correct)

	tr.KeyEvent(press(key.NameReturn))
	assert.False(t, m.Answered())

	tr.KeyEvent(press(key.NameEscape))
	assert.Equal(t, trainer.StartScreen, m.Screen())
}

func TestEscapeLeavesTheOctaveReferenceFirst(t *testing.T) {
	tr, _ := newTestTrainer(t)
	m := tr.Model
	tr.KeyEvent(press(key.NameReturn))
	tr.KeyEvent(press("O"))
	require.Equal(t, trainer.OctavesScreen, m.Screen())

	tr.KeyEvent(press(key.NameEscape))
	assert.Equal(t, trainer.TrainingScreen, m.Screen())
	tr.KeyEvent(press(key.NameEscape))
	assert.Equal(t, trainer.StartScreen, m.Screen())
}

func TestReleasesAndUnboundKeysAreIgnored(t *testing.T) {
	tr, audio := newTestTrainer(t)
	tr.KeyEvent(key.Event{Name: key.NameReturn, State: key.Release})
	tr.KeyEvent(press("Z"))
	assert.Equal(t, trainer.StartScreen, tr.Model.Screen())
	assert.Empty(t, audio.played)
}

func TestNoteKeysCountFromTheLowestSelectedOctave(t *testing.T) {
	tr, audio := newTestTrainer(t)
	tr.Model.OctaveSelected(pianoear.Small).Bool().Set(true)
	tr.KeyEvent(press("A"))
	tr.KeyEvent(press("W"))
	tr.KeyEvent(press("K"))
	assert.Equal(t, []string{"C3", "C#3", "C4"}, audio.played)
}

func TestShortcutQRequestsClosingTheWindow(t *testing.T) {
	tr, _ := newTestTrainer(t)
	tr.KeyEvent(press("Q"))
	assert.Empty(t, tr.Model.Broker().CloseGUI, "plain Q is not bound")

	tr.KeyEvent(key.Event{Name: "Q", Modifiers: key.ModShortcut, State: key.Press})
	assert.Len(t, tr.Model.Broker().CloseGUI, 1)
}
