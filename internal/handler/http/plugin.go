package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/utils"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/go-chi/chi/v5"
)

// pluginMethod decodes the arguments of one plugin method and runs it. The
// returned value becomes the result of a successful envelope.
type pluginMethod func(r *http.Request) (any, error)

func (h *Handler) pluginMethods() map[string]pluginMethod {
	return map[string]pluginMethod{
		models.MethodSyncNow:       h.syncNow,
		models.MethodSyncNowProbe:  h.syncNowProbe,
		models.MethodGetConfig:     h.getConfig,
		models.MethodSetConfig:     h.setConfig,
		models.MethodGetAppSetting: h.getAppSetting,
		models.MethodSetAppSetting: h.setAppSetting,
	}
}

func (h *Handler) plugin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "method")

	call, ok := h.pluginMethods()[name]
	if !ok {
		log.Warn().Str("plugin_method", name).Msg(ErrUnknownMethod.Error())
		http.Error(w, ErrUnknownMethod.Error(), http.StatusNotFound)
		return
	}

	result, err := call(r)
	if err != nil {
		if status, isTransport := statusFromError(err); isTransport {
			log.Err(err).Str("plugin_method", name).Send()
			http.Error(w, err.Error(), status)
			return
		}

		log.Warn().Err(err).Str("plugin_method", name).Msg("plugin method failed")
		utils.WriteJSON(w, models.PluginResponse[string]{Success: false, Result: err.Error()}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.PluginResponse[any]{Success: true, Result: result}, http.StatusOK)
}

func decodeArgs(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedArguments, err)
	}
	return nil
}

func (h *Handler) syncNow(r *http.Request) (any, error) {
	var args models.SubmitRequest
	if err := decodeArgs(r, &args); err != nil {
		return nil, err
	}
	return h.services.SyncService.Submit(r.Context(), args.AppID)
}

// syncNowProbe answers null while the job runs.
func (h *Handler) syncNowProbe(r *http.Request) (any, error) {
	var args models.ProbeRequest
	if err := decodeArgs(r, &args); err != nil {
		return nil, err
	}
	return h.services.SyncService.Probe(r.Context(), args.AppID)
}

func (h *Handler) getConfig(r *http.Request) (any, error) {
	var args models.GetConfigRequest
	if err := decodeArgs(r, &args); err != nil {
		return nil, err
	}
	return h.services.SettingsService.GetConfig(r.Context(), args.Key, args.Defaults)
}

func (h *Handler) setConfig(r *http.Request) (any, error) {
	var args models.SetConfigRequest
	if err := decodeArgs(r, &args); err != nil {
		return nil, err
	}
	return nil, h.services.SettingsService.SetConfig(r.Context(), args.Key, args.Value)
}

func (h *Handler) getAppSetting(r *http.Request) (any, error) {
	var args models.GetAppSettingRequest
	if err := decodeArgs(r, &args); err != nil {
		return nil, err
	}
	return h.services.SettingsService.GetAppSetting(r.Context(), args.AppID, args.Key, args.Defaults)
}

func (h *Handler) setAppSetting(r *http.Request) (any, error) {
	var args models.SetAppSettingRequest
	if err := decodeArgs(r, &args); err != nil {
		return nil, err
	}
	return nil, h.services.SettingsService.SetAppSetting(r.Context(), args.AppID, args.Key, args.Value)
}
