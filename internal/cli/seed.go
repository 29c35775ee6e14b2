package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"showcase/api/internal/seed"
	"showcase/api/internal/store"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed empty collections and exit",
		Long: `seed inserts the canonical tools and industry sectors into the configured
store when the guarded collections are empty. It is only useful with
DATABASE_URL set; the in-memory store is discarded on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadRuntime(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !cfg.UsesDatabase() {
				log.Warn().Msg("DATABASE_URL is not set, seeding the in-memory store has no lasting effect")
			}
			s, _, closeStore, err := store.Open(cmd.Context(), store.Options{DatabaseURL: cfg.DatabaseURL, QueryTimeout: cfg.DBTimeout})
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer func() { _ = closeStore() }()

			res, err := seed.Run(cmd.Context(), s, seed.Options{Guard: cfg.Guard(), Logger: log})
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tools, %d industry sectors\n", res.Tools, res.Sectors)
			return nil
		},
	}
}
