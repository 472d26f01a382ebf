package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsMatchingWrites(t *testing.T) {
	dir := t.TempDir()
	changes := make(chan []string, 4)

	w, err := New(dir, []string{".lua"}, 50*time.Millisecond, func(paths []string) {
		changes <- paths
	})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.lua"), []byte("-- a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.lua"), []byte("-- b"), 0644))

	select {
	case paths := <-changes:
		assert.Equal(t, []string{filepath.Join(dir, "init.lua")}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestStopWithoutStart(t *testing.T) {
	w, err := New(t.TempDir(), []string{".lua"}, 0, func([]string) {})
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.NoError(t, w.Stop())
}

func TestStartFailureStillStops(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	w, err := New(missing, []string{".lua"}, 0, func([]string) {})
	require.NoError(t, err)

	assert.Error(t, w.Start())
	assert.NoError(t, w.Stop())
}
