// Package seed inserts the canonical showcase content into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"showcase/api/internal/store"
)

// Guard decides which emptiness checks gate seeding.
type Guard string

const (
	// GuardPerCollection checks and seeds tools and sectors independently.
	GuardPerCollection Guard = "per-collection"
	// GuardTools seeds both collections only when tools is empty. A store
	// holding tools but no sectors is left without sectors.
	GuardTools Guard = "tools"
)

func ParseGuard(s string) (Guard, error) {
	switch g := Guard(s); g {
	case GuardPerCollection, GuardTools:
		return g, nil
	case "":
		return GuardPerCollection, nil
	default:
		return "", fmt.Errorf("unknown seed guard %q (want %q or %q)", s, GuardPerCollection, GuardTools)
	}
}

type Options struct {
	Guard  Guard
	Logger zerolog.Logger
}

// Result reports how many records Run inserted.
type Result struct {
	Tools   int
	Sectors int
}

func (r Result) Seeded() bool { return r.Tools > 0 || r.Sectors > 0 }

// Run seeds s when the guarded collections are observed empty. Tools are
// always inserted before any sector. Run is meant to finish before the
// HTTP listener accepts connections.
func Run(ctx context.Context, s store.Store, opts Options) (Result, error) {
	log := opts.Logger.With().Str("component", "seed").Logger()
	guard := opts.Guard
	if guard == "" {
		guard = GuardPerCollection
	}

	tools, err := s.ListTools(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("check tools: %w", err)
	}
	seedTools := len(tools) == 0
	seedSectors := seedTools

	if guard == GuardPerCollection {
		sectors, err := s.ListIndustrySectors(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("check industry sectors: %w", err)
		}
		seedSectors = len(sectors) == 0
	}

	var res Result
	if seedTools {
		for _, t := range Tools() {
			if _, err := s.CreateTool(ctx, t); err != nil {
				return res, fmt.Errorf("seed tools: %w", err)
			}
			res.Tools++
		}
	} else {
		log.Debug().Int("existing", len(tools)).Msg("tools already present, skipping")
	}

	if seedSectors {
		for _, sec := range IndustrySectors() {
			if _, err := s.CreateIndustrySector(ctx, sec); err != nil {
				return res, fmt.Errorf("seed industry sectors: %w", err)
			}
			res.Sectors++
		}
	} else {
		log.Debug().Str("guard", string(guard)).Msg("industry sectors not seeded")
	}

	if res.Seeded() {
		log.Info().Int("tools", res.Tools).Int("sectors", res.Sectors).Msg("seeded canonical data")
	}
	return res, nil
}
