package repository

import (
	"context"
	"testing"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	loc := testutil.NewTestLocation("Home Farm")
	require.NoError(t, NewSQLiteLocationRepo(db).Create(ctx, loc))

	repo := NewSQLiteFieldRepo(db)
	field := testutil.NewTestField(loc.ID, "North Field", testutil.WithFieldArea(0.8))
	require.NoError(t, repo.Create(ctx, field))

	fetched, err := repo.GetByID(ctx, field.ID)
	require.NoError(t, err)
	assert.Equal(t, "North Field", fetched.Name)
	assert.Equal(t, loc.ID, fetched.LocationID)
	require.NotNil(t, fetched.Area)
	assert.Equal(t, 0.8, *fetched.Area)
}

func TestFieldRepo_ListByLocation(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	locRepo := NewSQLiteLocationRepo(db)
	repo := NewSQLiteFieldRepo(db)

	loc1 := testutil.NewTestLocation("Farm A")
	loc2 := testutil.NewTestLocation("Farm B")
	require.NoError(t, locRepo.Create(ctx, loc1))
	require.NoError(t, locRepo.Create(ctx, loc2))

	require.NoError(t, repo.Create(ctx, testutil.NewTestField(loc1.ID, "F1")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestField(loc1.ID, "F2")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestField(loc2.ID, "F3")))

	fields, err := repo.ListByLocation(ctx, loc1.ID)
	require.NoError(t, err)
	assert.Len(t, fields, 2)
	for _, f := range fields {
		assert.Equal(t, loc1.ID, f.LocationID)
	}
}

func TestFieldRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	loc := testutil.NewTestLocation("Farm")
	require.NoError(t, NewSQLiteLocationRepo(db).Create(ctx, loc))

	repo := NewSQLiteFieldRepo(db)
	field := testutil.NewTestField(loc.ID, "Old")
	require.NoError(t, repo.Create(ctx, field))

	field.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, field))

	fetched, err := repo.GetByID(ctx, field.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Name)

	require.NoError(t, repo.Delete(ctx, field.ID))
	_, err = repo.GetByID(ctx, field.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
