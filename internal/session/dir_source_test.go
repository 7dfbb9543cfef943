package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, events <-chan models.SessionEvent) models.SessionEvent {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no session event")
		return models.SessionEvent{}
	}
}

func startSource(t *testing.T, dir string) (<-chan models.SessionEvent, context.CancelFunc) {
	t.Helper()
	src, err := NewDirSource(dir, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	events, err := src.Watch(ctx)
	require.NoError(t, err)
	return events, cancel
}

func TestNewDirSource_EmptyDir(t *testing.T) {
	_, err := NewDirSource("", logger.Nop())
	assert.ErrorIs(t, err, ErrNoDirectory)
}

func TestDirSource_MarkerLifecycle(t *testing.T) {
	dir := t.TempDir()
	events, _ := startSource(t, dir)

	marker := filepath.Join(dir, "570.running")
	require.NoError(t, os.WriteFile(marker, nil, 0o644))

	e := nextEvent(t, events)
	assert.Equal(t, "570", e.EntityID)
	assert.True(t, e.Running)
	assert.False(t, e.At.IsZero())

	require.NoError(t, os.Remove(marker))

	e = nextEvent(t, events)
	assert.Equal(t, "570", e.EntityID)
	assert.False(t, e.Running)
}

func TestDirSource_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	events, _ := startSource(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "730.running"), nil, 0o644))

	e := nextEvent(t, events)
	assert.Equal(t, "730", e.EntityID)
	assert.True(t, e.Running)
}

func TestDirSource_RenameEndsSession(t *testing.T) {
	dir := t.TempDir()
	events, _ := startSource(t, dir)

	marker := filepath.Join(dir, "570.running")
	require.NoError(t, os.WriteFile(marker, nil, 0o644))
	require.True(t, nextEvent(t, events).Running)

	require.NoError(t, os.Rename(marker, filepath.Join(dir, "570.done")))

	e := nextEvent(t, events)
	assert.Equal(t, "570", e.EntityID)
	assert.False(t, e.Running)
}

func TestDirSource_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "sessions")
	events, _ := startSource(t, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "570.running"), nil, 0o644))
	assert.Equal(t, "570", nextEvent(t, events).EntityID)
}

func TestDirSource_ClosesOnCancel(t *testing.T) {
	events, cancel := startSource(t, t.TempDir())
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEntityFromMarker(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "/run/sessions/570.running", want: "570", wantOK: true},
		{path: "730.running", want: "730", wantOK: true},
		{path: "/run/sessions/.running"},
		{path: "/run/sessions/570.running.tmp"},
		{path: "/run/sessions/570"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := EntityFromMarker(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
