package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/projects/repository"
)

func TestMemoryStore_AppendOnly(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	spec := domain.ProjectSpecification{
		Region:                 "Western",
		ProjectType:            "residential",
		TotalFloorArea:         1200,
		NumberOfBathrooms:      2,
		NumberOfFloors:         1,
		PreferredFinishQuality: "standard",
	}

	first, err := store.Create(ctx, spec)
	require.NoError(t, err)
	second, err := store.Create(ctx, spec)
	require.NoError(t, err)

	assert.Equal(t, "proj_1", first.ID)
	assert.Equal(t, "proj_2", second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "proj_1", items[0].ID)

	// List hands back a copy; callers cannot reach the stored slice
	items[0].Region = "mutated"
	fresh, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Western", fresh[0].Region)
}
