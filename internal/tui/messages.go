package tui

import (
	"github.com/MKhiriev/go-git-save/models"
)

type stateChangedMsg struct {
	state models.SyncState
}

type runningChangedMsg struct {
	entityID string
}

type toastMsg struct {
	notification models.Notification
}

type toastExpiredMsg struct {
	id int
}

type syncDoneMsg struct {
	job models.SyncJob
	err error
}

type settingsLoadedMsg struct {
	entityID string
	settings models.EntitySettings
}

type settingsFlushedMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
