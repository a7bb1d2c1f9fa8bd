package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	estdomain "github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/projects/domain"
)

// MemoryStore keeps accepted projects in process memory with an incrementing
// identifier. It carries no durability guarantees; it exists for demo and
// test use.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int
	items  []domain.Project
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Create(_ context.Context, spec estdomain.ProjectSpecification) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Project{
		ID:                   fmt.Sprintf("proj_%d", s.nextID),
		ProjectSpecification: spec,
		CreatedAt:            time.Now().UTC(),
	}
	s.nextID++
	s.items = append(s.items, p)
	return p, nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Project, len(s.items))
	copy(out, s.items)
	return out, nil
}
