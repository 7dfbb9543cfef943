// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/utils"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "git-save-panel"
)

func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	adapterCfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.App{SecretKey: testSecret, TokenIssuer: testIssuer, TokenDuration: time.Minute}

	a, err := NewHTTPBackendAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

// pluginServer serves one plugin method, checks the bearer token and decodes
// the arguments into args before replying with body.
func pluginServer(t *testing.T, method string, args any, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/plugin/"+method, r.URL.Path)

		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if assert.NoError(t, err) {
			_, err = utils.ValidateAndParseJWTToken(raw, testSecret, testIssuer)
			assert.NoError(t, err)
		}

		if args != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(args))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestNewHTTPBackendAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.Adapter{}, config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── SubmitSync ───────────────────────────────────────────────────────────────

func TestSubmitSync_Started(t *testing.T) {
	var args models.SubmitRequest
	srv := pluginServer(t, models.MethodSyncNow, &args, http.StatusOK, `{"success":true,"result":"started"}`)
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).SubmitSync(context.Background(), "570")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, models.SubmitStarted, resp.Result)
	assert.Equal(t, "570", args.AppID)
}

func TestSubmitSync_RejectedCarriesMessage(t *testing.T) {
	srv := pluginServer(t, models.MethodSyncNow, nil, http.StatusOK, `{"success":false,"result":"disk full"}`)
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).SubmitSync(context.Background(), "570")

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "disk full", resp.Result)
}

func TestSubmitSync_Unauthorized(t *testing.T) {
	srv := pluginServer(t, models.MethodSyncNow, nil, http.StatusUnauthorized, "invalid token")
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SubmitSync(context.Background(), "570")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSubmitSync_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).SubmitSync(context.Background(), "570")

	assert.Error(t, err)
}

// ── ProbeSync ────────────────────────────────────────────────────────────────

func TestProbeSync(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantSuccess bool
		wantCode    *int
		wantErr     bool
	}{
		{name: "running", body: `{"success":true,"result":null}`, wantSuccess: true},
		{name: "finished ok", body: `{"success":true,"result":0}`, wantSuccess: true, wantCode: ptr(0)},
		{name: "finished failed", body: `{"success":true,"result":-3}`, wantSuccess: true, wantCode: ptr(-3)},
		{name: "rejected with message", body: `{"success":false,"result":"no such job"}`},
		{name: "garbage result", body: `{"success":true,"result":"soon"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var args models.ProbeRequest
			srv := pluginServer(t, models.MethodSyncNowProbe, &args, http.StatusOK, tt.body)
			defer srv.Close()

			resp, err := newTestAdapter(t, srv.URL).ProbeSync(context.Background(), "570")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Result)
			assert.Equal(t, "570", args.AppID)
		})
	}
}

// ── config and settings ──────────────────────────────────────────────────────

func TestGetConfig(t *testing.T) {
	var args models.GetConfigRequest
	srv := pluginServer(t, models.MethodGetConfig, &args, http.StatusOK, `{"success":true,"result":"false"}`)
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).GetConfig(context.Background(), "sync_on_game_exit", "true")

	require.NoError(t, err)
	assert.Equal(t, models.ConfigResponse{Success: true, Result: "false"}, resp)
	assert.Equal(t, models.GetConfigRequest{Key: "sync_on_game_exit", Defaults: "true"}, args)
}

func TestSetConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var args models.SetConfigRequest
		srv := pluginServer(t, models.MethodSetConfig, &args, http.StatusOK, `{"success":true,"result":null}`)
		defer srv.Close()

		err := newTestAdapter(t, srv.URL).SetConfig(context.Background(), "toast_auto_sync", "false")

		require.NoError(t, err)
		assert.Equal(t, models.SetConfigRequest{Key: "toast_auto_sync", Value: "false"}, args)
	})

	t.Run("rejected", func(t *testing.T) {
		srv := pluginServer(t, models.MethodSetConfig, nil, http.StatusOK, `{"success":false,"result":"read-only"}`)
		defer srv.Close()

		err := newTestAdapter(t, srv.URL).SetConfig(context.Background(), "toast_auto_sync", "false")

		assert.ErrorIs(t, err, ErrRejected)
	})

	t.Run("server error", func(t *testing.T) {
		srv := pluginServer(t, models.MethodSetConfig, nil, http.StatusInternalServerError, "boom")
		defer srv.Close()

		err := newTestAdapter(t, srv.URL).SetConfig(context.Background(), "toast_auto_sync", "false")

		assert.ErrorIs(t, err, ErrInternalServerError)
	})
}

func TestGetEntitySetting(t *testing.T) {
	var args models.GetAppSettingRequest
	srv := pluginServer(t, models.MethodGetAppSetting, &args, http.StatusOK, `{"success":true,"result":"/saves/570"}`)
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).GetEntitySetting(context.Background(), "570", "local", "")

	require.NoError(t, err)
	assert.Equal(t, "/saves/570", resp.Result)
	assert.Equal(t, models.GetAppSettingRequest{AppID: "570", Key: "local"}, args)
}

func TestSetEntitySetting(t *testing.T) {
	var args models.SetAppSettingRequest
	srv := pluginServer(t, models.MethodSetAppSetting, &args, http.StatusOK, `{"success":true}`)
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).SetEntitySetting(context.Background(), "570", "user", "deck")

	require.NoError(t, err)
	assert.Equal(t, models.SetAppSettingRequest{AppID: "570", Key: "user", Value: "deck"}, args)
}

func TestUnknownMethod_NotFound(t *testing.T) {
	srv := pluginServer(t, models.MethodGetAppSetting, nil, http.StatusNotFound, "unknown method")
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetEntitySetting(context.Background(), "570", "local", "")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).Health(context.Background()))
}

// ── token cache ──────────────────────────────────────────────────────────────

func TestBearer_ReusesValidToken(t *testing.T) {
	a := newTestAdapter(t, "127.0.0.1:1")

	first, err := a.bearer()
	require.NoError(t, err)
	second, err := a.bearer()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBearer_MissingSecret(t *testing.T) {
	a, err := NewHTTPBackendAdapter(config.Adapter{HTTPAddress: "127.0.0.1:1"}, config.App{TokenIssuer: testIssuer, TokenDuration: time.Minute}, logger.Nop())
	require.NoError(t, err)

	_, err = a.SubmitSync(context.Background(), "570")
	assert.Error(t, err)
}

func ptr(v int) *int { return &v }
