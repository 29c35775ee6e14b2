// Package cli defines the showcase command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"showcase/api/internal/config"
	"showcase/api/internal/logging"
)

// NewRootCommand builds the command tree. Running the root without a
// subcommand serves the API.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "showcase",
		Short: "Content API for the AI tools showcase site",
		Long: `showcase serves the tools and industry sectors content used by the
portfolio site. Set DATABASE_URL to persist content in Postgres; without it
content lives in memory and is re-seeded on every start.`,
		SilenceUsage: true,
	}
	serve := newServeCommand()
	root.RunE = serve.RunE
	root.AddCommand(serve, newSeedCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRuntime(w io.Writer) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	log, err := logging.New(w, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, log, nil
}
