package domain

import (
	"errors"
	"time"

	estdomain "github.com/ghanabuild/estimator-backend/internal/estimation/domain"
)

var ErrNotFound = errors.New("project not found")

// Project is an accepted specification with its registry identity. The
// registry is append-only; projects are never mutated after creation.
type Project struct {
	ID string `json:"id"`
	estdomain.ProjectSpecification
	CreatedAt time.Time `json:"createdAt"`
}
