package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-git-save/internal/logger"
)

type named struct {
	name   string
	worker Worker
}

// Workers starts workers in registration order and stops them in reverse.
type Workers struct {
	mu      sync.Mutex
	workers []named
	started []named
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers w under name. Nil workers are skipped.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker == nil {
		return w
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.workers = append(w.workers, named{name: name, worker: worker})
	return w
}

// Start launches every worker. If one fails, the workers already started are
// stopped and the error is returned.
func (w *Workers) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, n := range w.workers {
		if err := n.worker.Start(ctx); err != nil {
			w.stopLocked()
			return fmt.Errorf("start worker %s: %w", n.name, err)
		}
		w.started = append(w.started, n)
		w.logger.Debug().Str("worker", n.name).Msg("worker started")
	}
	return nil
}

// Stop stops the started workers and is safe to call more than once.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Workers) stopLocked() {
	for i := len(w.started) - 1; i >= 0; i-- {
		n := w.started[i]
		n.worker.Stop()
		w.logger.Debug().Str("worker", n.name).Msg("worker stopped")
	}
	w.started = nil
}
