package store

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidInput is returned when a create request is missing required fields.
var ErrInvalidInput = errors.New("invalid input")

// Store defines the minimal interface used by handlers and the seeder so we
// can plug different backends (memory, postgres).
type Store interface {
	ListTools(ctx context.Context) ([]Tool, error)
	CreateTool(ctx context.Context, t NewTool) (Tool, error)

	ListIndustrySectors(ctx context.Context) ([]IndustrySector, error)
	CreateIndustrySector(ctx context.Context, s NewIndustrySector) (IndustrySector, error)

	Ping(ctx context.Context) error
}

type Tool struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	UseCase     string  `json:"useCase"`
	LogoInitial string  `json:"logoInitial"`
	LogoURL     *string `json:"logoUrl,omitempty"`
}

// NewTool is a Tool before the backend assigns its id.
type NewTool struct {
	Name        string
	Category    string
	Description string
	UseCase     string
	LogoInitial string
	// Optional; nil stores no logo.
	LogoURL *string
}

func (t NewTool) Validate() error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: tool name is required", ErrInvalidInput)
	case t.Category == "":
		return fmt.Errorf("%w: tool %q: category is required", ErrInvalidInput, t.Name)
	case t.Description == "":
		return fmt.Errorf("%w: tool %q: description is required", ErrInvalidInput, t.Name)
	case t.UseCase == "":
		return fmt.Errorf("%w: tool %q: use case is required", ErrInvalidInput, t.Name)
	}
	if n := utf8.RuneCountInString(t.LogoInitial); n < 1 || n > 2 {
		return fmt.Errorf("%w: tool %q: logo initial must be 1-2 characters, got %d", ErrInvalidInput, t.Name, n)
	}
	return nil
}

func (t NewTool) withID(id int64) Tool {
	out := Tool{
		ID:          id,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		UseCase:     t.UseCase,
		LogoInitial: t.LogoInitial,
	}
	if t.LogoURL != nil {
		u := *t.LogoURL
		out.LogoURL = &u
	}
	return out
}

type IndustrySector struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	UseCases []string `json:"useCases"`
}

// NewIndustrySector is an IndustrySector before the backend assigns its id.
// UseCases are kept in display order.
type NewIndustrySector struct {
	Title    string
	UseCases []string
}

func (s NewIndustrySector) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("%w: sector title is required", ErrInvalidInput)
	}
	if len(s.UseCases) == 0 {
		return fmt.Errorf("%w: sector %q: at least one use case is required", ErrInvalidInput, s.Title)
	}
	for i, uc := range s.UseCases {
		if uc == "" {
			return fmt.Errorf("%w: sector %q: use case %d is empty", ErrInvalidInput, s.Title, i)
		}
	}
	return nil
}

func (s NewIndustrySector) withID(id int64) IndustrySector {
	return IndustrySector{ID: id, Title: s.Title, UseCases: append([]string(nil), s.UseCases...)}
}
