package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/Houeta/staffdesk/internal/config"
	"github.com/Houeta/staffdesk/internal/lib/logger/sl"
)

// Run serves the given handler until the context is cancelled, then shuts the
// server down gracefully within the configured timeout.
func Run(ctx context.Context, log *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "HTTP server shutdown failed", sl.Err(err))
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	log.InfoContext(ctx, "HTTP server stopped gracefully")
	return nil
}
