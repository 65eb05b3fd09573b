package gioui

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gioui.org/io/key"
	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/trainer"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type (
	KeyBinding struct {
		Key                                        string
		Shortcut, Ctrl, Command, Shift, Alt, Super bool
		Action                                     string
	}
)

var keyBindingMap = map[key.Event]string{}

//go:embed keybindings.yml
var defaultKeyBindings []byte

func init() {
	var keyBindings, userKeyBindings []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(defaultKeyBindings))
	dec.KnownFields(true)
	if err := dec.Decode(&keyBindings); err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	if err := readCustomConfig("keybindings.yml", &userKeyBindings); err == nil {
		keyBindings = append(keyBindings, userKeyBindings...)
	} else if !os.IsNotExist(err) {
		logrus.WithError(err).Warn("ignoring custom keybindings")
	}
	for _, kb := range keyBindings {
		var mods key.Modifiers
		if kb.Shortcut {
			mods |= key.ModShortcut
		}
		if kb.Ctrl {
			mods |= key.ModCtrl
		}
		if kb.Command {
			mods |= key.ModCommand
		}
		if kb.Shift {
			mods |= key.ModShift
		}
		if kb.Alt {
			mods |= key.ModAlt
		}
		if kb.Super {
			mods |= key.ModSuper
		}
		keyEvent := key.Event{Name: key.Name(kb.Key), Modifiers: mods, State: key.Press}
		if kb.Action == "" { // unbind
			delete(keyBindingMap, keyEvent)
		} else {
			keyBindingMap[keyEvent] = kb.Action
		}
	}
}

// readCustomConfig reads a yml file from the user's config directory into
// target, which needs to be a pointer.
func readCustomConfig(filename string, target any) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(filepath.Join(configDir, "pianoear", filename))
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

// KeyEvent handles a key press that no widget consumed.
func (t *Trainer) KeyEvent(e key.Event) {
	if e.State != key.Press {
		return
	}
	action, ok := keyBindingMap[key.Event{Name: e.Name, Modifiers: e.Modifiers, State: key.Press}]
	if !ok {
		return
	}
	switch action {
	case "StartOrNext":
		if t.Model.Screen() == trainer.StartScreen {
			t.Model.Start().Do()
		} else {
			t.Model.Next().Do()
		}
	case "Repeat":
		t.Model.Repeat().Do()
	case "ShowOctaves":
		t.Model.ShowOctaves().Do()
	case "Quit":
		t.Model.Quit().Do()
	case "BackOrStop":
		if t.Model.Back().Enabled() {
			t.Model.Back().Do()
		} else {
			t.Model.Stop().Do()
		}
	default:
		if semitone, ok := strings.CutPrefix(action, "Note"); ok {
			if s, err := strconv.Atoi(semitone); err == nil {
				t.playKey(s)
			}
		}
	}
}

// playKey selects a note counting semitones from the C of the lowest
// selected octave, or of the first octave if none is selected.
func (t *Trainer) playKey(semitone int) {
	base := pianoear.First
	if octaves := t.Model.Preferences().OctaveSet().Slice(); len(octaves) > 0 {
		base = octaves[0]
	}
	if n, ok := pianoear.NoteByMIDI(12*(int(base)+1) + semitone); ok {
		t.Model.SelectNote(n)
	}
}
