package app

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStaleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "picker")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o755))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))
	return path
}

func TestHotReloaderDetectsNewBinary(t *testing.T) {
	path := writeStaleFile(t)

	h, err := NewFileReloader(path)
	require.NoError(t, err)

	var fired atomic.Int32
	h.OnNewBinary(func() { fired.Add(1) })
	require.NoError(t, h.Start())
	defer h.Stop()

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o755))

	require.Eventually(t, func() bool { return fired.Load() == 1 }, 5*time.Second, 20*time.Millisecond)

	// Fires once until re-armed.
	require.NoError(t, os.WriteFile(path, []byte("v3"), 0o755))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestHotReloaderIgnoresOtherFiles(t *testing.T) {
	path := writeStaleFile(t)

	h, err := NewFileReloader(path)
	require.NoError(t, err)

	var fired atomic.Int32
	h.OnNewBinary(func() { fired.Add(1) })
	require.NoError(t, h.Start())
	defer h.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestHotReloaderResetBaseline(t *testing.T) {
	path := writeStaleFile(t)

	h, err := NewFileReloader(path)
	require.NoError(t, err)
	before := h.Baseline()

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o755))
	assert.True(t, h.checkForUpdate())

	h.ResetBaseline()
	assert.True(t, h.Baseline().After(before))
	assert.False(t, h.checkForUpdate())
}

func TestNewFileReloaderMissing(t *testing.T) {
	_, err := NewFileReloader(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
