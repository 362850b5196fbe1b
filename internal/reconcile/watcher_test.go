package reconcile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
)

func TestWatchWorkbookRejectsBadTargets(t *testing.T) {
	ctx := context.Background()

	_, _, err := reconcile.WatchWorkbook(ctx, reconcile.WatchConfig{Path: ""}, nil)
	assert.Error(t, err)

	_, _, err = reconcile.WatchWorkbook(ctx, reconcile.WatchConfig{Path: "notas.txt"}, nil)
	assert.Error(t, err)

	missingDir := filepath.Join(t.TempDir(), "nope", "hoja.xlsx")
	_, _, err = reconcile.WatchWorkbook(ctx, reconcile.WatchConfig{Path: missingDir}, nil)
	assert.Error(t, err)
}

func TestWatchWorkbookEmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hoja.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := reconcile.WatchWorkbook(ctx, reconcile.WatchConfig{
		Path:     path,
		Debounce: 20 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	select {
	case got := <-events:
		assert.Equal(t, filepath.Clean(path), got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event within timeout")
	}

	// Writes to unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "otro.xlsx"), []byte("x"), 0o644))
	select {
	case got := <-events:
		t.Fatalf("unexpected event for unrelated file: %s", got)
	case <-time.After(150 * time.Millisecond):
	}
}
