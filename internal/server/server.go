package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/koji-m/Bluedog/internal/config"
	"github.com/koji-m/Bluedog/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.ClientBridge, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoAddress
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg.HTTPAddress, cfg.ShutdownTimeout, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-served:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err = <-served
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
