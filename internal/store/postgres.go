package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// DefaultQueryTimeout bounds every database call when no timeout is configured.
const DefaultQueryTimeout = 5 * time.Second

type PostgresStore struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresStore(db *sql.DB, timeout time.Duration) *PostgresStore {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &PostgresStore{db: db, timeout: timeout}
}

func (p *PostgresStore) ListTools(ctx context.Context) ([]Tool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	rows, err := p.db.QueryContext(ctx, `
        select id, name, category, description, use_case, logo_initial, logo_url
        from tools
        order by id
    `)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()
	out := []Tool{}
	for rows.Next() {
		var t Tool
		var logoURL sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.UseCase, &t.LogoInitial, &logoURL); err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		if logoURL.Valid {
			t.LogoURL = &logoURL.String
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return out, nil
}

func (p *PostgresStore) CreateTool(ctx context.Context, in NewTool) (Tool, error) {
	if err := in.Validate(); err != nil {
		return Tool{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	var logoURL sql.NullString
	if in.LogoURL != nil {
		logoURL = sql.NullString{String: *in.LogoURL, Valid: true}
	}
	var id int64
	err := p.db.QueryRowContext(ctx, `
        insert into tools (name, category, description, use_case, logo_initial, logo_url)
        values ($1,$2,$3,$4,$5,$6)
        returning id
    `, in.Name, in.Category, in.Description, in.UseCase, in.LogoInitial, logoURL).Scan(&id)
	if err != nil {
		return Tool{}, fmt.Errorf("create tool %q: %w", in.Name, err)
	}
	return in.withID(id), nil
}

func (p *PostgresStore) ListIndustrySectors(ctx context.Context) ([]IndustrySector, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	rows, err := p.db.QueryContext(ctx, `
        select id, title, use_cases
        from industry_sectors
        order by id
    `)
	if err != nil {
		return nil, fmt.Errorf("list industry sectors: %w", err)
	}
	defer rows.Close()
	out := []IndustrySector{}
	for rows.Next() {
		var s IndustrySector
		var useCases pq.StringArray
		if err := rows.Scan(&s.ID, &s.Title, &useCases); err != nil {
			return nil, fmt.Errorf("scan industry sector: %w", err)
		}
		s.UseCases = []string(useCases)
		if s.UseCases == nil {
			s.UseCases = []string{}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list industry sectors: %w", err)
	}
	return out, nil
}

func (p *PostgresStore) CreateIndustrySector(ctx context.Context, in NewIndustrySector) (IndustrySector, error) {
	if err := in.Validate(); err != nil {
		return IndustrySector{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	var id int64
	err := p.db.QueryRowContext(ctx, `
        insert into industry_sectors (title, use_cases)
        values ($1,$2)
        returning id
    `, in.Title, pq.Array(in.UseCases)).Scan(&id)
	if err != nil {
		return IndustrySector{}, fmt.Errorf("create industry sector %q: %w", in.Title, err)
	}
	return in.withID(id), nil
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.db.PingContext(ctx)
}

func (p *PostgresStore) Close() error { return p.db.Close() }

var _ Store = (*PostgresStore)(nil)
