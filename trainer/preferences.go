package trainer

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pianoear/pianoear"
	"gopkg.in/yaml.v3"
)

type (
	Preferences struct {
		Window    WindowPreferences `yaml:"window"`
		Octaves   []int             `yaml:"octaves,flow"`
		Sharps    bool              `yaml:"sharps"`
		Language  string            `yaml:"language"`
		MIDIInput string            `yaml:"midiinput"`
	}

	WindowPreferences struct {
		Width     int  `yaml:"width"`
		Height    int  `yaml:"height"`
		Maximized bool `yaml:"maximized,omitempty"`
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

const preferencesFileName = "preferences.yml"

func DefaultPreferences() Preferences {
	var p Preferences
	dec := yaml.NewDecoder(bytes.NewReader(defaultPreferencesYaml))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		panic(fmt.Errorf("failed to unmarshal default preferences: %w", err))
	}
	return p
}

// PreferencesPath returns where the user's preferences live, or "" if the
// config directory is unknown.
func PreferencesPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "pianoear", preferencesFileName)
}

// LoadPreferences overlays the file at path on the defaults. A missing file
// is not an error; a broken one is, but the defaults are returned with it.
func LoadPreferences(path string) (Preferences, error) {
	p := DefaultPreferences()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("could not read preferences: %w", err)
	}
	overlay := p
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return p, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return overlay, nil
}

func SavePreferences(path string, p Preferences) error {
	if path == "" {
		return nil
	}
	out, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not marshal preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("could not write preferences: %w", err)
	}
	return nil
}

// OctaveSet returns the selected octaves; out of range numbers are ignored.
func (p Preferences) OctaveSet() pianoear.OctaveSet {
	var s pianoear.OctaveSet
	for _, o := range p.Octaves {
		s = s.With(pianoear.Octave(o))
	}
	return s
}

func (p *Preferences) SetOctaveSet(s pianoear.OctaveSet) {
	p.Octaves = p.Octaves[:0]
	for _, o := range s.Slice() {
		p.Octaves = append(p.Octaves, int(o))
	}
}
