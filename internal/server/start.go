package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start serves on addr until ctx is canceled, then drains in-flight requests
// and closes the event bus.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr, "api", s.Cfg.GetAPIBaseURL())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.E.Shutdown(shutdownCtx)
	if cerr := s.Bus.Close(); cerr != nil {
		slog.Error("Failed to close event bus", "error", cerr)
	}
	return err
}
