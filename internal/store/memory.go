package store

import (
	"context"
	"sync"
)

// MemoryStore keeps both collections in process memory. Ids restart at 1 for
// every new instance; data is lost when the process exits.
type MemoryStore struct {
	mu           sync.RWMutex
	tools        []Tool
	sectors      []IndustrySector
	nextToolID   int64
	nextSectorID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tools:        []Tool{},
		sectors:      []IndustrySector{},
		nextToolID:   1,
		nextSectorID: 1,
	}
}

func (s *MemoryStore) ListTools(_ context.Context) ([]Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Tool, 0, len(s.tools))
	for _, t := range s.tools {
		out = append(out, copyTool(t))
	}
	return out, nil
}

func (s *MemoryStore) CreateTool(_ context.Context, in NewTool) (Tool, error) {
	if err := in.Validate(); err != nil {
		return Tool{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := in.withID(s.nextToolID)
	s.nextToolID++
	s.tools = append(s.tools, t)
	return copyTool(t), nil
}

func (s *MemoryStore) ListIndustrySectors(_ context.Context) ([]IndustrySector, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]IndustrySector, 0, len(s.sectors))
	for _, sec := range s.sectors {
		out = append(out, copySector(sec))
	}
	return out, nil
}

func (s *MemoryStore) CreateIndustrySector(_ context.Context, in NewIndustrySector) (IndustrySector, error) {
	if err := in.Validate(); err != nil {
		return IndustrySector{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sec := in.withID(s.nextSectorID)
	s.nextSectorID++
	s.sectors = append(s.sectors, sec)
	return copySector(sec), nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func copyTool(t Tool) Tool {
	if t.LogoURL != nil {
		u := *t.LogoURL
		t.LogoURL = &u
	}
	return t
}

func copySector(s IndustrySector) IndustrySector {
	s.UseCases = append([]string(nil), s.UseCases...)
	return s
}

var _ Store = (*MemoryStore)(nil)
