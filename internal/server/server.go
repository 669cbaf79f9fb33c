package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/handler"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
)

type server struct {
	servers []Server
	logger  *logger.Logger

	shutdownOnce sync.Once
}

// NewServer creates a transport server for every handler in handlers. The
// returned Server runs them all and stops them together.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if handlers.HTTP != nil {
		s.servers = append(s.servers, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.servers = append(s.servers, g)
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or one of the
// servers fails, then shuts every server down.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, len(s.servers))
	var wg sync.WaitGroup

	for _, srv := range s.servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.RunServer(); err != nil {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("server failed")
	}

	s.Shutdown()
	wg.Wait()
	close(errCh)

	for err := range errCh {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, srv := range s.servers {
			srv.Shutdown()
		}
	})
}
