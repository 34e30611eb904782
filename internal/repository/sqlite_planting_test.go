package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantingRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	bed := seedBed(t, db)
	repo := NewSQLitePlantingRepo(db)

	ref := uuid.NewString()
	p := testutil.NewTestPlanting(bed.ID, "Carrots", "2026-03-05", "2026-05-20",
		testutil.WithQuantity(120),
		testutil.WithClientRef(ref),
	)
	require.NoError(t, repo.Create(ctx, p))
	assert.Greater(t, p.ID, int64(0))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carrots", fetched.Crop)
	assert.Equal(t, bed.ID, fetched.BedID)
	assert.Equal(t, "2026-03-05", fetched.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-05-20", fetched.EndDate.Format("2006-01-02"))
	require.NotNil(t, fetched.Quantity)
	assert.Equal(t, 120.0, *fetched.Quantity)
	assert.Equal(t, ref, fetched.ClientRef)
}

func TestPlantingRepo_Create_DiscardsDraftID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	bed := seedBed(t, db)
	repo := NewSQLitePlantingRepo(db)

	p := testutil.NewTestPlanting(bed.ID, "Lettuce", "2026-04-01", "2026-05-15")
	p.ID = -3
	require.True(t, p.IsDraft())
	require.NoError(t, repo.Create(ctx, p))
	assert.Greater(t, p.ID, int64(0))
	assert.False(t, p.IsDraft())
}

func TestPlantingRepo_ListByBed(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	bed := seedBed(t, db)
	repo := NewSQLitePlantingRepo(db)

	require.NoError(t, repo.Create(ctx, testutil.NewTestPlanting(bed.ID, "Kale", "2026-02-01", "2026-04-01")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPlanting(bed.ID, "Beets", "2026-05-01", "2026-07-01")))

	list, err := repo.ListByBed(ctx, bed.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPlantingRepo_ListIntersectingYear(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	bed := seedBed(t, db)
	repo := NewSQLitePlantingRepo(db)

	inside := testutil.NewTestPlanting(bed.ID, "Inside", "2026-03-01", "2026-06-01")
	crossing := testutil.NewTestPlanting(bed.ID, "Crossing", "2025-11-15", "2026-01-10")
	before := testutil.NewTestPlanting(bed.ID, "Before", "2025-02-01", "2025-04-01")
	after := testutil.NewTestPlanting(bed.ID, "After", "2027-02-01", "2027-04-01")
	require.NoError(t, repo.Create(ctx, inside))
	require.NoError(t, repo.Create(ctx, crossing))
	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, after))

	list, err := repo.ListIntersectingYear(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, list, 2)

	crops := []string{list[0].Crop, list[1].Crop}
	assert.Contains(t, crops, "Inside")
	assert.Contains(t, crops, "Crossing")
}

func TestPlantingRepo_ListDetails(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	bed := seedBed(t, db)
	repo := NewSQLitePlantingRepo(db)
	require.NoError(t, repo.Create(ctx, testutil.NewTestPlanting(bed.ID, "Squash", "2026-05-01", "2026-09-01")))

	details, err := repo.ListDetails(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Squash", details[0].Planting.Crop)
	assert.Equal(t, "Bed 1", details[0].BedName)
	assert.Equal(t, "North Field", details[0].FieldName)
}

func TestPlantingRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	bed := seedBed(t, db)
	repo := NewSQLitePlantingRepo(db)

	p := testutil.NewTestPlanting(bed.ID, "Peas", "2026-03-10", "2026-06-10")
	require.NoError(t, repo.Create(ctx, p))

	p.Crop = "Snap Peas"
	require.NoError(t, repo.Update(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Snap Peas", fetched.Crop)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
