package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	estdomain "github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/projects/domain"
)

// PostgresStore is the durable Store implementation.
//
// Expected schema:
//
//	CREATE TABLE projects (
//	    public_id              text PRIMARY KEY,
//	    region                 text NOT NULL,
//	    project_type           text NOT NULL,
//	    total_floor_area       integer NOT NULL,
//	    number_of_bathrooms    integer NOT NULL,
//	    number_of_floors       integer NOT NULL,
//	    finish_quality         text NOT NULL,
//	    include_external_works boolean NOT NULL,
//	    created_at             timestamptz NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, spec estdomain.ProjectSpecification) (domain.Project, error) {
	for i := 0; i < 5; i++ {
		publicID := "proj_" + uuid.NewString()[:8]

		const q = `
INSERT INTO projects (public_id, region, project_type, total_floor_area,
                      number_of_bathrooms, number_of_floors, finish_quality,
                      include_external_works)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING public_id, created_at;
`
		p := domain.Project{ProjectSpecification: spec}
		err := s.db.QueryRowContext(ctx, q,
			publicID, spec.Region, spec.ProjectType, spec.TotalFloorArea,
			spec.NumberOfBathrooms, spec.NumberOfFloors,
			spec.PreferredFinishQuality, spec.IncludeExternalWorks).
			Scan(&p.ID, &p.CreatedAt)

		if err == nil {
			return p, nil
		}

		// unique violation on public_id → retry
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return domain.Project{}, err
	}

	return domain.Project{}, fmt.Errorf("failed to generate unique project id")
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT public_id, region, project_type, total_floor_area,
       number_of_bathrooms, number_of_floors, finish_quality,
       include_external_works, created_at
FROM projects
ORDER BY created_at DESC;
`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Region, &p.ProjectType, &p.TotalFloorArea,
			&p.NumberOfBathrooms, &p.NumberOfFloors, &p.PreferredFinishQuality,
			&p.IncludeExternalWorks, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
