/*
main.go - HTTP server entry point

PURPOSE:
  Serves the current year's payroll schedule over HTTP. The year is resolved
  once at startup, like the CLI; restart the server to roll over to a new year.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Resolve configuration and logger
  3. Build the rule engine and API handler
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  --port   HTTP server port (default: 8080)

ENVIRONMENT:
  LOG_LEVEL  debug, info, warn or error (default: info)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/payroll-schedule/api"
	"github.com/warp/payroll-schedule/config"
	"github.com/warp/payroll-schedule/generic"
	"github.com/warp/payroll-schedule/logging"
	"github.com/warp/payroll-schedule/payroll"
)

func main() {
	var port int

	c := &cobra.Command{
		Use:           "server",
		Short:         "Serves this year's payroll schedule over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(port)
		},
	}
	c.Flags().IntVar(&port, "port", 8080, "HTTP server port")

	if err := c.Execute(); err != nil {
		logging.Must(os.Getenv(config.EnvLogLevel)).Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func serve(port int) error {
	cfg, err := config.Load(generic.SystemClock{}, "")
	if err != nil {
		return err
	}

	logger := logging.Must(cfg.LogLevel)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	server, err := newServer(cfg, port, logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.Int("port", port), zap.Int("year", cfg.Year))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newServer builds the engine, handler and router for cfg without listening.
func newServer(cfg config.Config, port int, logger *zap.Logger) (*http.Server, error) {
	engine, err := payroll.NewEngine(cfg.Rules)
	if err != nil {
		return nil, err
	}

	handler := api.NewHandler(engine, cfg.Year, logger)
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}
