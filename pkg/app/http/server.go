package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/pkg/config"
)

const defaultShutdownTimeout = 30 * time.Second

// NewServer builds an *http.Server from the server section of the config.
func NewServer(handler http.Handler, cfg *config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// ServeAndWait serves handler until ctx is done or the listener fails, then shuts the
// server down within cfg.ShutdownTimeout. A listener failure is returned after shutdown.
func ServeAndWait(ctx context.Context, handler http.Handler, logger *zap.Logger, cfg *config.ServerConfig) error {
	switch {
	case handler == nil:
		return errors.New("nil handler")
	case cfg == nil:
		return errors.New("nil server config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := NewServer(handler, cfg)
	serveErr := make(chan error, 1)

	go func() {
		logger.Info("HTTP server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var failure error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case failure = <-serveErr:
		logger.Error("HTTP server error", zap.Error(failure))
	}

	if err := shutdown(srv, cfg.ShutdownTimeout, logger); err != nil {
		return err
	}
	if failure != nil {
		return fmt.Errorf("http server failed: %w", failure)
	}
	return nil
}

func shutdown(srv *http.Server, timeout time.Duration, logger *zap.Logger) error {
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("Shutting down HTTP server", zap.Duration("timeout", timeout))
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("HTTP server stopped")
	return nil
}
