package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"showcase/api/internal/config"
	"showcase/api/internal/handlers"
	"showcase/api/internal/seed"
	"showcase/api/internal/store"
)

const readHeaderTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Seed empty collections, then serve the content API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadRuntime(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log, nil)
		},
	}
}

// serve blocks until ctx is cancelled or the listener fails. Seeding finishes
// before the listener is opened, so no request sees a half-seeded store.
// onListen, when set, receives the bound address.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger, onListen func(net.Addr)) error {
	s, backend, closeStore, err := store.Open(ctx, store.Options{DatabaseURL: cfg.DatabaseURL, QueryTimeout: cfg.DBTimeout})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()
	log.Info().Str("backend", backend).Msg("storage ready")

	if _, err := seed.Run(ctx, s, seed.Options{Guard: cfg.Guard(), Logger: log}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}
	srv := &http.Server{
		Handler:           handlers.NewRouter(s, log, cfg.RequestTimeout),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("content API listening")
	if onListen != nil {
		onListen(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
