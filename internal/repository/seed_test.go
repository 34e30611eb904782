package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/testutil"
	"github.com/stretchr/testify/require"
)

// seedBed creates a location -> field -> bed chain and returns the bed so
// planting tests have a valid foreign key target.
func seedBed(t *testing.T, database *sql.DB) *domain.Bed {
	t.Helper()
	ctx := context.Background()

	loc := testutil.NewTestLocation("Home Farm")
	require.NoError(t, NewSQLiteLocationRepo(database).Create(ctx, loc))

	field := testutil.NewTestField(loc.ID, "North Field")
	require.NoError(t, NewSQLiteFieldRepo(database).Create(ctx, field))

	bed := testutil.NewTestBed(field.ID, "Bed 1")
	require.NoError(t, NewSQLiteBedRepo(database).Create(ctx, bed))
	return bed
}
