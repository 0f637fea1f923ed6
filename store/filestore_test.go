package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/deepnoodle-ai/statements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	saved := []statements.Item{
		{
			ID:        "abc12345",
			Text:      "drink 4l of water",
			Date:      "2024-04-10",
			Category:  statements.CategoryGoal,
			Timeline:  statements.TimelineFuture,
			CreatedAt: time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, s.Save("todos", saved))

	var loaded []statements.Item
	require.NoError(t, s.Load("todos", &loaded))
	assert.Equal(t, saved, loaded)
}

func TestFileStoreMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	loaded := []statements.Item{{ID: "sentinel"}}
	require.NoError(t, s.Load("never-saved", &loaded))
	assert.Equal(t, "sentinel", loaded[0].ID, "missing key leaves the value unchanged")
}

func TestFileStoreOverwrite(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("k", map[string]int{"a": 1}))
	require.NoError(t, s.Save("k", map[string]int{"b": 2}))

	var loaded map[string]int
	require.NoError(t, s.Load("k", &loaded))
	assert.Equal(t, map[string]int{"b": 2}, loaded)
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save("k", "v"))

	var v string
	require.NoError(t, s.Load("k", &v))
	assert.Equal(t, "v", v)
}
