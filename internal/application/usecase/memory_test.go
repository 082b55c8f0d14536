package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/kwawicks/kwawicks-api/internal/domain"
	"github.com/kwawicks/kwawicks-api/internal/domain/entity"
)

type memClients struct {
	mu        sync.Mutex
	items     map[string]entity.Client
	err       error
	updateErr error
}

func newMemClients() *memClients { return &memClients{items: map[string]entity.Client{}} }

func (m *memClients) Create(_ context.Context, c *entity.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[c.ID]; ok {
		return domain.ErrConflict
	}
	m.items[c.ID] = *c
	return nil
}

func (m *memClients) Update(_ context.Context, c *entity.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	m.items[c.ID] = *c
	return nil
}

func (m *memClients) Get(_ context.Context, id string) (*entity.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memClients) List(_ context.Context, limit int) ([]*entity.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Client, 0, len(m.items))
	for _, c := range m.items {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memClients) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

type memSpecies struct {
	mu        sync.Mutex
	items     map[string]entity.Species
	updateErr error
}

func newMemSpecies() *memSpecies { return &memSpecies{items: map[string]entity.Species{}} }

func (m *memSpecies) Create(_ context.Context, s *entity.Species) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[s.ID]; ok {
		return domain.ErrConflict
	}
	m.items[s.ID] = *s
	return nil
}

func (m *memSpecies) Update(_ context.Context, s *entity.Species) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.items[s.ID]; !ok {
		return domain.ErrNotFound
	}
	m.items[s.ID] = *s
	return nil
}

func (m *memSpecies) Get(_ context.Context, id string) (*entity.Species, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSpecies) List(_ context.Context) ([]*entity.Species, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Species, 0, len(m.items))
	for _, s := range m.items {
		s := s
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
