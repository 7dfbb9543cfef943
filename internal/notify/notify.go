// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify defines the sink that receives user-facing status messages.
package notify

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
)

// Titles and display durations used for sync notifications.
const (
	TitleSync  = "Git Sync"
	TitleError = "Git Save Error"

	InfoDuration  = 5 * time.Second
	ErrorDuration = 2 * time.Second
)

// Notifier receives notifications. Notify must not block the caller.
type Notifier interface {
	Notify(n models.Notification)
}

// Info builds an info notification with the sync title.
func Info(body string) models.Notification {
	return models.Notification{Title: TitleSync, Body: body, Severity: models.SeverityInfo, Duration: InfoDuration}
}

// Error builds an error notification with the error title.
func Error(body string) models.Notification {
	return models.Notification{Title: TitleError, Body: body, Severity: models.SeverityError, Duration: ErrorDuration}
}

// Infof is Info with formatting.
func Infof(format string, args ...any) models.Notification {
	return Info(fmt.Sprintf(format, args...))
}

// Errorf is Error with formatting.
func Errorf(format string, args ...any) models.Notification {
	return Error(fmt.Sprintf(format, args...))
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements [Notifier].
func (l *LogNotifier) Notify(n models.Notification) {
	event := l.logger.Info()
	if n.Severity == models.SeverityError {
		event = l.logger.Error()
	}
	event.Str("title", n.Title).Dur("duration", n.Duration).Msg(n.Body)
}

// Multi fans a notification out to every sink in order.
type Multi []Notifier

// Notify implements [Notifier].
func (m Multi) Notify(n models.Notification) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(n)
		}
	}
}

// Func adapts a function to [Notifier].
type Func func(models.Notification)

// Notify implements [Notifier].
func (f Func) Notify(n models.Notification) {
	f(n)
}
