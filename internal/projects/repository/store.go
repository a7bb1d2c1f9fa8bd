package repository

import (
	"context"

	estdomain "github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/projects/domain"
)

// Store is the append-only project registry. Core logic only ever appends
// accepted specifications and lists them back; a durable implementation can
// swap in without touching the handlers.
type Store interface {
	Create(ctx context.Context, spec estdomain.ProjectSpecification) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}
