package tui

import (
	"time"

	"github.com/MKhiriev/go-git-save/models"
)

const (
	defaultToastBuffer   = 16
	defaultToastDuration = 3 * time.Second
	maxVisibleToasts     = 3
)

// ToastSink is the notification sink rendered by the panel. Notify never
// blocks: notifications arriving while the buffer is full are dropped.
type ToastSink struct {
	ch chan models.Notification
}

// NewToastSink returns a sink buffering up to size notifications. A
// non-positive size selects the default buffer.
func NewToastSink(size int) *ToastSink {
	if size <= 0 {
		size = defaultToastBuffer
	}
	return &ToastSink{ch: make(chan models.Notification, size)}
}

// Notify implements notify.Notifier.
func (s *ToastSink) Notify(n models.Notification) {
	select {
	case s.ch <- n:
	default:
	}
}

func (s *ToastSink) updates() <-chan models.Notification {
	return s.ch
}

type toast struct {
	id           int
	notification models.Notification
}

func toastDuration(n models.Notification) time.Duration {
	if n.Duration <= 0 {
		return defaultToastDuration
	}
	return n.Duration
}

func renderToasts(toasts []toast) string {
	if len(toasts) == 0 {
		return ""
	}
	if len(toasts) > maxVisibleToasts {
		toasts = toasts[len(toasts)-maxVisibleToasts:]
	}

	var out string
	for i, t := range toasts {
		style := toastStyle
		if t.notification.Severity == models.SeverityError {
			style = errorToast
		}
		box := style.Render(titleStyle.Render(t.notification.Title) + "\n" + t.notification.Body)
		if i > 0 {
			out += "\n"
		}
		out += box
	}
	return out
}
