package trainer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RecordFileName is the name of the record file in the user's home
// directory.
const RecordFileName = ".piano_ear_trainer_record.json"

// ErrRecordUnreadable is returned when the record file is missing or
// corrupt. The caller is expected to carry on with a zero record.
var ErrRecordUnreadable = errors.New("record unreadable")

type (
	// RecordStore persists the best streak in a small JSON file. An empty
	// path disables persistence.
	RecordStore struct {
		Path string
	}

	record struct {
		BestStreak int `json:"best_streak"`
	}
)

// DefaultRecordPath returns the record file path in the home directory, or
// "" if the home directory is unknown.
func DefaultRecordPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, RecordFileName)
}

// Load reads the best streak. On any failure it returns 0 and an error
// wrapping ErrRecordUnreadable.
func (s RecordStore) Load() (int, error) {
	if s.Path == "" {
		return 0, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRecordUnreadable, err)
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRecordUnreadable, err)
	}
	if r.BestStreak < 0 {
		return 0, fmt.Errorf("%w: negative best streak %d", ErrRecordUnreadable, r.BestStreak)
	}
	return r.BestStreak, nil
}

// Save overwrites the record file with the given best streak.
func (s RecordStore) Save(best int) error {
	if s.Path == "" {
		return nil
	}
	out, err := json.Marshal(record{BestStreak: best})
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}
	if err := os.WriteFile(s.Path, out, 0o644); err != nil {
		return fmt.Errorf("could not write record file: %w", err)
	}
	return nil
}
