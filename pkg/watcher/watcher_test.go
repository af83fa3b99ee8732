package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(t.TempDir(), nil, nil)
	assert.Error(t, err, "callback is required")

	_, err = New(filepath.Join(t.TempDir(), "missing"), nil, func() {})
	assert.Error(t, err)
}

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	fileWatcher, err := New(path, nil, func() {})
	require.NoError(t, err)
	assert.Equal(t, dir, fileWatcher.dir)
	assert.True(t, fileWatcher.relevant(fsnotify.Event{Name: path, Op: fsnotify.Write}))
	assert.False(t, fileWatcher.relevant(fsnotify.Event{Name: filepath.Join(dir, "other.txt"), Op: fsnotify.Write}))
	assert.False(t, fileWatcher.relevant(fsnotify.Event{Name: path, Op: fsnotify.Chmod}))

	dirWatcher, err := New(dir, nil, func() {})
	require.NoError(t, err)
	assert.True(t, dirWatcher.relevant(fsnotify.Event{Name: filepath.Join(dir, "new.txt"), Op: fsnotify.Create}))
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	var changes atomic.Int32
	w, err := New(path, NewDebouncer(10*time.Millisecond), func() { changes.Add(1) })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("b"), 0644))

	assert.Eventually(t, func() bool { return changes.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := New(t.TempDir(), nil, func() {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
