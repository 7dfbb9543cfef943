// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/fsnotify/fsnotify"
)

// MarkerSuffix is the file name suffix of a session marker.
const MarkerSuffix = ".running"

// ErrNoDirectory is returned by [NewDirSource] for an empty directory path.
var ErrNoDirectory = errors.New("session directory is not set")

// DirSource watches a marker directory. Creating "<appid>.running" reports
// the game as running; removing or renaming it reports the session as ended.
// Other files are ignored.
type DirSource struct {
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

func NewDirSource(dir string, logger *logger.Logger) (*DirSource, error) {
	if dir == "" {
		return nil, ErrNoDirectory
	}
	return &DirSource{dir: dir, now: time.Now, logger: logger}, nil
}

// Watch creates the directory when needed and streams events until ctx is
// done. The returned channel is closed when watching stops.
func (s *DirSource) Watch(ctx context.Context) (<-chan models.SessionEvent, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err = watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", s.dir, err)
	}

	events := make(chan models.SessionEvent)
	go s.loop(ctx, watcher, events)

	s.logger.Info().Str("dir", s.dir).Msg("watching game sessions")
	return events, nil
}

func (s *DirSource) loop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- models.SessionEvent) {
	defer close(out)
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn().Err(err).Msg("session watcher error")
		case e, ok := <-watcher.Events:
			if !ok {
				return
			}
			event, ok := s.translate(e)
			if !ok {
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *DirSource) translate(e fsnotify.Event) (models.SessionEvent, bool) {
	entityID, ok := EntityFromMarker(e.Name)
	if !ok {
		return models.SessionEvent{}, false
	}

	switch {
	case e.Has(fsnotify.Create):
		return models.SessionEvent{EntityID: entityID, Running: true, At: s.now()}, true
	case e.Has(fsnotify.Remove), e.Has(fsnotify.Rename):
		return models.SessionEvent{EntityID: entityID, Running: false, At: s.now()}, true
	}
	return models.SessionEvent{}, false
}

// EntityFromMarker returns the appid encoded in a marker file path.
func EntityFromMarker(path string) (string, bool) {
	name := filepath.Base(path)
	entityID, found := strings.CutSuffix(name, MarkerSuffix)
	if !found || entityID == "" {
		return "", false
	}
	return entityID, true
}
