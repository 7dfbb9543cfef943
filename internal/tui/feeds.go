package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// latest is a one-slot channel holding only the most recent value. publish
// never blocks, so it is safe to call from store subscribers and workers.
type latest[T any] struct {
	ch chan T
}

func newLatest[T any]() *latest[T] {
	return &latest[T]{ch: make(chan T, 1)}
}

func (l *latest[T]) publish(v T) {
	for {
		select {
		case l.ch <- v:
			return
		default:
		}
		select {
		case <-l.ch:
		default:
		}
	}
}

// RunningFeed tracks the running game reported by the session watcher.
// Its Set method matches service.RunningFunc.
type RunningFeed struct {
	mu      sync.Mutex
	current string
	updates *latest[string]
}

func NewRunningFeed() *RunningFeed {
	return &RunningFeed{updates: newLatest[string]()}
}

// Set records entityID as the running game; empty means none.
func (f *RunningFeed) Set(entityID string) {
	f.mu.Lock()
	f.current = entityID
	f.mu.Unlock()
	f.updates.publish(entityID)
}

// Current returns the last reported game.
func (f *RunningFeed) Current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// listen waits for the next value on ch and wraps it into a message. The
// model re-arms it after handling every message, so the channel is drained
// one value at a time by the program's command runner.
func listen[T any](ctx context.Context, ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case v, ok := <-ch:
			if !ok {
				return nil
			}
			return wrap(v)
		}
	}
}
