// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/my-group/internal/config"
	"github.com/MKhiriev/my-group/internal/handler"
	"github.com/MKhiriev/my-group/internal/logger"
)

var errNoServersAreCreated = errors.New("no servers are created")

type server struct {
	transports      []transport
	shutdownTimeout time.Duration

	shutdownOnce sync.Once
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		for _, t := range s.transports {
			if err := t.Shutdown(ctx); err != nil {
				s.logger.Err(err).Str("transport", t.Name()).Msg("shutdown failed")
			}
		}
	})
}

// run serves until ctx is done or the first transport fails.
func (s *server) run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersAreCreated
	}

	failed := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.Name()).Msg("launching server")
		go func() {
			if err := t.Serve(); err != nil {
				failed <- fmt.Errorf("%s server: %w", t.Name(), err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-failed:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
