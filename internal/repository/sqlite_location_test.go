package repository

import (
	"context"
	"testing"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(db)
	ctx := context.Background()

	loc := testutil.NewTestLocation("Home Farm", testutil.WithLocationArea(2.5), testutil.WithLocationNotes("south slope"))
	require.NoError(t, repo.Create(ctx, loc))
	assert.Greater(t, loc.ID, int64(0))

	fetched, err := repo.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home Farm", fetched.Name)
	require.NotNil(t, fetched.Area)
	assert.Equal(t, 2.5, *fetched.Area)
	assert.Equal(t, "south slope", fetched.Notes)
	assert.False(t, fetched.CreatedAt.IsZero())
}

func TestLocationRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocationRepo_NilAreaRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(db)
	ctx := context.Background()

	loc := testutil.NewTestLocation("Unmeasured")
	require.NoError(t, repo.Create(ctx, loc))

	fetched, err := repo.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Area)
}

func TestLocationRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestLocation("A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLocation("B")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLocationRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(db)
	ctx := context.Background()

	loc := testutil.NewTestLocation("Old Name")
	require.NoError(t, repo.Create(ctx, loc))

	loc.Name = "New Name"
	area := 1.2
	loc.Area = &area
	require.NoError(t, repo.Update(ctx, loc))

	fetched, err := repo.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", fetched.Name)
	require.NotNil(t, fetched.Area)
	assert.Equal(t, 1.2, *fetched.Area)
}

func TestLocationRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLocationRepo(db)
	ctx := context.Background()

	loc := testutil.NewTestLocation("Doomed")
	require.NoError(t, repo.Create(ctx, loc))
	require.NoError(t, repo.Delete(ctx, loc.ID))

	_, err := repo.GetByID(ctx, loc.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
