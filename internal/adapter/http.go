package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/utils"
	"github.com/MKhiriev/go-git-save/models"
)

const (
	pluginPathPrefix = "/api/plugin/"
	healthPath       = "/api/health"

	tokenSubject = "panel"
	// tokenRefreshMargin renews the cached token before it expires.
	tokenRefreshMargin = 30 * time.Second
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	secretKey     string
	tokenIssuer   string
	tokenDuration time.Duration

	mu    sync.Mutex
	token models.Token

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP implementation of [BackendAdapter].
// It validates adapterCfg.HTTPAddress, configures the resty client with the
// base URL and request timeout, and signs every call with a short-lived
// HS256 token derived from appCfg.
func NewHTTPBackendAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (BackendAdapter, error) {
	if err := validateBaseURL(adapterCfg.HTTPAddress); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpBackendAdapter{
		client:        utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout),
		secretKey:     appCfg.SecretKey,
		tokenIssuer:   appCfg.TokenIssuer,
		tokenDuration: appCfg.TokenDuration,
		logger:        logger,
	}, nil
}

func validateBaseURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("address must include host")
	}
	return nil
}

// SubmitSync implements [BackendAdapter].
func (h *httpBackendAdapter) SubmitSync(ctx context.Context, entityID string) (models.SubmitResponse, error) {
	var resp models.SubmitResponse
	if err := h.call(ctx, models.MethodSyncNow, models.SubmitRequest{AppID: entityID}, &resp); err != nil {
		return models.SubmitResponse{}, err
	}
	return resp, nil
}

// ProbeSync implements [BackendAdapter]. The result is decoded leniently: a
// failed probe may carry a message instead of a code.
func (h *httpBackendAdapter) ProbeSync(ctx context.Context, entityID string) (models.ProbeResponse, error) {
	var raw models.PluginResponse[json.RawMessage]
	if err := h.call(ctx, models.MethodSyncNowProbe, models.ProbeRequest{AppID: entityID}, &raw); err != nil {
		return models.ProbeResponse{}, err
	}
	if !raw.Success {
		return models.ProbeResponse{Success: false}, nil
	}

	var code *int
	if len(raw.Result) > 0 {
		if err := json.Unmarshal(raw.Result, &code); err != nil {
			return models.ProbeResponse{}, fmt.Errorf("decode %s result: %w", models.MethodSyncNowProbe, err)
		}
	}
	return models.ProbeResponse{Success: true, Result: code}, nil
}

// GetConfig implements [BackendAdapter].
func (h *httpBackendAdapter) GetConfig(ctx context.Context, key, defaults string) (models.ConfigResponse, error) {
	var resp models.ConfigResponse
	args := models.GetConfigRequest{Key: key, Defaults: defaults}
	if err := h.call(ctx, models.MethodGetConfig, args, &resp); err != nil {
		return models.ConfigResponse{}, err
	}
	return resp, nil
}

// SetConfig implements [BackendAdapter].
func (h *httpBackendAdapter) SetConfig(ctx context.Context, key, value string) error {
	return h.write(ctx, models.MethodSetConfig, models.SetConfigRequest{Key: key, Value: value})
}

// GetEntitySetting implements [BackendAdapter].
func (h *httpBackendAdapter) GetEntitySetting(ctx context.Context, entityID, key, defaults string) (models.ConfigResponse, error) {
	var resp models.ConfigResponse
	args := models.GetAppSettingRequest{AppID: entityID, Key: key, Defaults: defaults}
	if err := h.call(ctx, models.MethodGetAppSetting, args, &resp); err != nil {
		return models.ConfigResponse{}, err
	}
	return resp, nil
}

// SetEntitySetting implements [BackendAdapter].
func (h *httpBackendAdapter) SetEntitySetting(ctx context.Context, entityID, key, value string) error {
	args := models.SetAppSettingRequest{AppID: entityID, Key: key, Value: value}
	return h.write(ctx, models.MethodSetAppSetting, args)
}

// Health implements [BackendAdapter].
func (h *httpBackendAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) write(ctx context.Context, method string, args any) error {
	var resp models.PluginResponse[json.RawMessage]
	if err := h.call(ctx, method, args, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%s: %w: %s", method, ErrRejected, strings.TrimSpace(string(resp.Result)))
	}
	return nil
}

func (h *httpBackendAdapter) call(ctx context.Context, method string, args, result any) error {
	token, err := h.bearer()
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(args).
		Post(pluginPathPrefix + method)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", method).Msg("plugin call failed")
		return fmt.Errorf("%s: %w", method, err)
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	return nil
}

// bearer returns a cached token, signing a new one when the cached token is
// about to expire.
func (h *httpBackendAdapter) bearer() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token.SignedString != "" && h.token.ExpiresAt != nil &&
		time.Until(h.token.ExpiresAt.Time) > tokenRefreshMargin {
		return h.token.SignedString, nil
	}

	token, err := utils.GenerateJWTToken(h.tokenIssuer, tokenSubject, h.tokenDuration, h.secretKey)
	if err != nil {
		return "", err
	}
	h.token = token
	return token.SignedString, nil
}
