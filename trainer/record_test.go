package trainer_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pianoear/pianoear/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStoreLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "record.json")
	s := trainer.RecordStore{Path: path}

	best, err := s.Load()
	assert.Equal(t, 0, best)
	assert.ErrorIs(t, err, trainer.ErrRecordUnreadable)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte(`{"best_streak": 7}`), 0o644))
	best, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, best)

	require.NoError(t, os.WriteFile(path, []byte(`{"best_streak": `), 0o644))
	best, err = s.Load()
	assert.Equal(t, 0, best)
	assert.ErrorIs(t, err, trainer.ErrRecordUnreadable)

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	best, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestRecordStoreSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	s := trainer.RecordStore{Path: path}
	require.NoError(t, s.Save(8))
	bytes, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"best_streak": 8}`, string(bytes))
}

func TestRecordStoreSaveFailure(t *testing.T) {
	s := trainer.RecordStore{Path: filepath.Join(t.TempDir(), "missing", "record.json")}
	assert.Error(t, s.Save(3))
}

func TestRecordStoreDisabled(t *testing.T) {
	var s trainer.RecordStore
	best, err := s.Load()
	assert.NoError(t, err)
	assert.Equal(t, 0, best)
	assert.NoError(t, s.Save(5))
}
