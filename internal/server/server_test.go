package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/handler"
	handlerhttp "github.com/MKhiriev/go-git-save/internal/handler/http"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/internal/service"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func newTestHandlers(cfg config.Server) *handler.Handlers {
	services := &service.Services{
		AppInfoService: service.NewAppInfoService(
			models.NewAppBuildInfo("9.9.9", "", ""),
			testingclock.NewFakePassiveClock(time.Now()),
			logger.Nop(),
		),
	}
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(services, cfg, logger.Nop())}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoHTTPHandler)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoHTTPHandler)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	_, err = NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}

	var closed []string
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop(),
		func() { closed = append(closed, "runner") },
		func() { closed = append(closed, "db") },
	)
	require.NoError(t, err)
	addr := srv.(*server).httpServer.Addr()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		body = string(b)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "9.9.9", body)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, []string{"runner", "db"}, closed)

	srv.Shutdown()
	assert.Len(t, closed, 2, "closers run once")
}
