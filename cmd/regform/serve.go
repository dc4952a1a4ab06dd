package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	regform "github.com/goliatone/go-regform"
	"github.com/goliatone/go-regform/components/registration"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser registration form",
		Long: `Serve the registration page and its realtime validation channel.
Field events stream from the browser over socket.io; error messages and the
submit-enabled flag stream back.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			component, err := regform.NewComponent(ctx,
				registration.WithDebounce(cfg.Debounce),
				registration.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			pattern, err := component.RegisterRoutes(ctx, mux, cfg.BasePath)
			if err != nil {
				return err
			}

			server := &http.Server{Addr: cfg.Listen, Handler: mux}
			serveErr := make(chan error, 1)
			go func() {
				serveErr <- server.ListenAndServe()
			}()
			logger.Info("registration form listening", "addr", cfg.Listen, "path", pattern)

			select {
			case err := <-serveErr:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().String("listen", ":8080", "listen address")
	cmd.Flags().String("base-path", "/", "mount base path")
	cmd.Flags().Duration("debounce", 400*time.Millisecond, "input debounce window")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}
