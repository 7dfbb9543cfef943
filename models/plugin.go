// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Plugin method names served by the backend under /api/plugin/{method}.
const (
	MethodSyncNow       = "sync_now"
	MethodSyncNowProbe  = "sync_now_probe"
	MethodGetConfig     = "get_config"
	MethodSetConfig     = "set_config"
	MethodGetAppSetting = "get_app_setting"
	MethodSetAppSetting = "set_app_setting"
)

// Submit results returned by sync_now.
const (
	SubmitStarted   = "started"
	SubmitRunning   = "running"
	SubmitSucceeded = "succeeded"
	SubmitSkipped   = "skipped"
)

// Exit codes reported by sync_now_probe once a job has finished.
const (
	ProbeCodeOK               = 0
	ProbeCodeSkipped          = 100
	ProbeCodeOpenFailed       = -1
	ProbeCodeRemoteFailed     = -2
	ProbeCodeAddFailed        = -3
	ProbeCodeCommitFailed     = -4
	ProbeCodePullFailed       = -5
	ProbeCodePushFailed       = -6
	ProbeCodeSettingsMissing  = -7
	ProbeCodeRepositoryLocked = -8
	ProbeCodeUnknownJob       = -9 // no job for the entity, e.g. after a restart
)

// PluginResponse is the envelope of every plugin method response.
type PluginResponse[T any] struct {
	Success bool `json:"success"`
	Result  T    `json:"result"`
}

// SubmitResponse is the sync_now response.
type SubmitResponse = PluginResponse[string]

// ProbeResponse is the sync_now_probe response. A nil Result means the job is
// still running.
type ProbeResponse = PluginResponse[*int]

// ConfigResponse is the get_config and get_app_setting response.
type ConfigResponse = PluginResponse[string]

// SubmitRequest carries the sync_now arguments.
type SubmitRequest struct {
	AppID string `json:"appid"`
}

// ProbeRequest carries the sync_now_probe arguments. An empty AppID probes
// the most recently submitted job.
type ProbeRequest struct {
	AppID string `json:"appid,omitempty"`
}

// GetConfigRequest carries the get_config arguments.
type GetConfigRequest struct {
	Key      string `json:"key"`
	Defaults string `json:"defaults"`
}

// SetConfigRequest carries the set_config arguments.
type SetConfigRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetAppSettingRequest carries the get_app_setting arguments.
type GetAppSettingRequest struct {
	AppID    string `json:"appid"`
	Key      string `json:"key"`
	Defaults string `json:"defaults"`
}

// SetAppSettingRequest carries the set_app_setting arguments.
type SetAppSettingRequest struct {
	AppID string `json:"appid"`
	Key   string `json:"key"`
	Value string `json:"value"`
}
