package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/handler"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	closers    []func()

	shutdownOnce sync.Once
	logger       *logger.Logger
}

// NewServer binds the HTTP listener. closers run in order after the server
// has stopped accepting requests.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...func()) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, ErrNoHTTPHandler
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer: httpSrv,
		closers:    closers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(s.httpServer.RunServer)
	g.Go(func() error {
		<-gCtx.Done()
		s.Shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.httpServer.Shutdown()
		for _, closeFn := range s.closers {
			closeFn()
		}
	})
}
