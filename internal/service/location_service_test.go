package service

import (
	"context"
	"math"
	"testing"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_Create_RequiresName(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLocationService(repository.NewSQLiteLocationRepo(db))

	err := svc.Create(context.Background(), testutil.NewTestLocation(""))
	assert.ErrorContains(t, err, "name is required")
}

func TestLocationService_Create_SanitizesArea(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLocationService(repository.NewSQLiteLocationRepo(db))
	ctx := context.Background()

	loc := testutil.NewTestLocation("Farm", testutil.WithLocationArea(math.Inf(1)))
	require.NoError(t, svc.Create(ctx, loc))

	fetched, err := svc.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Area)
}

func TestLocationService_Delete_MissingIsNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLocationService(repository.NewSQLiteLocationRepo(db))

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
