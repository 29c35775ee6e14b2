package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Options struct {
	// DatabaseURL selects the postgres backend when set.
	DatabaseURL  string
	QueryTimeout time.Duration
}

// Backend names reported by Open.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Open picks the backend once for the process: postgres when a database URL
// is configured, memory otherwise. A configured but unreachable database is
// an error; there is no fallback to memory. The returned close func is never nil.
func Open(ctx context.Context, opts Options) (Store, string, func() error, error) {
	if opts.DatabaseURL == "" {
		return NewMemoryStore(), BackendMemory, func() error { return nil }, nil
	}
	db, err := sql.Open("postgres", opts.DatabaseURL)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open database: %w", err)
	}
	p := NewPostgresStore(db, opts.QueryTimeout)
	if err := p.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, "", nil, fmt.Errorf("ping database: %w", err)
	}
	schemaCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := EnsureSchema(schemaCtx, db); err != nil {
		_ = db.Close()
		return nil, "", nil, err
	}
	return p, BackendPostgres, p.Close, nil
}
