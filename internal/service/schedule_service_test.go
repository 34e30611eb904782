package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/testutil"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleService(db *sql.DB) ScheduleService {
	return NewScheduleService(
		repository.NewSQLiteLocationRepo(db),
		repository.NewSQLiteFieldRepo(db),
		repository.NewSQLiteBedRepo(db),
		repository.NewSQLitePlantingRepo(db),
		repository.NewSQLiteUIStateStore(db),
	)
}

// seedFarm persists two locations so the flattener keeps its three-level
// shape, with one field and two beds under the first.
func seedFarm(t *testing.T, db *sql.DB) (bedA, bedB int64) {
	t.Helper()
	ctx := context.Background()

	loc := testutil.NewTestLocation("Home Farm")
	require.NoError(t, repository.NewSQLiteLocationRepo(db).Create(ctx, loc))
	other := testutil.NewTestLocation("Rented Acre")
	require.NoError(t, repository.NewSQLiteLocationRepo(db).Create(ctx, other))

	field := testutil.NewTestField(loc.ID, "North Field")
	require.NoError(t, repository.NewSQLiteFieldRepo(db).Create(ctx, field))

	beds := repository.NewSQLiteBedRepo(db)
	a := testutil.NewTestBed(field.ID, "Bed 1")
	b := testutil.NewTestBed(field.ID, "Bed 2")
	require.NoError(t, beds.Create(ctx, a))
	require.NoError(t, beds.Create(ctx, b))
	return a.ID, b.ID
}

func TestScheduleService_Build_EndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bedA, _ := seedFarm(t, db)

	plantings := repository.NewSQLitePlantingRepo(db)
	require.NoError(t, plantings.Create(ctx, testutil.NewTestPlanting(bedA, "Carrots", "2026-03-05", "2026-05-20")))
	require.NoError(t, plantings.Create(ctx, testutil.NewTestPlanting(bedA, "Winter Squash", "2025-11-16", "2026-01-10")))
	require.NoError(t, plantings.Create(ctx, testutil.NewTestPlanting(bedA, "Old Crop", "2024-03-01", "2024-05-01")))

	svc := newScheduleService(db)
	sched, err := svc.Build(ctx, ScheduleQuery{
		Year:        2026,
		Granularity: timeline.GranularityMonth,
		Scope:       "schedule",
	})
	require.NoError(t, err)

	assert.Len(t, sched.Columns, 12)
	// First run has no persisted state, so the whole tree is expanded:
	// 2 locations + 1 field + 2 beds.
	require.Len(t, sched.Rows, 5)

	rowID := timeline.BedRowID(bedA)
	entries := sched.Bars[rowID]
	require.Len(t, entries, 2)
	// Sorted by start date: the carried-over squash comes first.
	assert.Equal(t, "Winter Squash", entries[0].Planting.Crop)
	assert.Equal(t, 0, entries[0].Bar.StartColumn)
	assert.Equal(t, 0.0, entries[0].Bar.LeftOffset)
	assert.Equal(t, "Carrots", entries[1].Planting.Crop)
	assert.Equal(t, 2, entries[1].Bar.StartColumn)
}

func TestScheduleService_Build_CollapsedHidesBedsAndBars(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bedA, _ := seedFarm(t, db)

	plantings := repository.NewSQLitePlantingRepo(db)
	require.NoError(t, plantings.Create(ctx, testutil.NewTestPlanting(bedA, "Carrots", "2026-03-05", "2026-05-20")))

	svc := newScheduleService(db)
	first, err := svc.Build(ctx, ScheduleQuery{Year: 2026, Granularity: timeline.GranularityMonth, Scope: "schedule"})
	require.NoError(t, err)
	require.Len(t, first.Rows, 5)

	// Collapse the field; its beds and their bars disappear.
	fieldRowID := first.Rows[1].RowID()
	require.Equal(t, timeline.RowField, first.Rows[1].Kind())
	require.NoError(t, svc.ToggleRow(ctx, "schedule", fieldRowID))

	second, err := svc.Build(ctx, ScheduleQuery{Year: 2026, Granularity: timeline.GranularityMonth, Scope: "schedule"})
	require.NoError(t, err)
	assert.Len(t, second.Rows, 3)
	assert.Empty(t, second.Bars[timeline.BedRowID(bedA)])
}

func TestScheduleService_Build_WeekGranularity(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bedA, _ := seedFarm(t, db)

	plantings := repository.NewSQLitePlantingRepo(db)
	require.NoError(t, plantings.Create(ctx, testutil.NewTestPlanting(bedA, "Lettuce", "2026-01-05", "2026-01-18")))

	svc := newScheduleService(db)
	sched, err := svc.Build(ctx, ScheduleQuery{Year: 2026, Granularity: timeline.GranularityWeek, Scope: "schedule"})
	require.NoError(t, err)

	assert.Len(t, sched.Columns, 52)
	entries := sched.Bars[timeline.BedRowID(bedA)]
	require.Len(t, entries, 1)
	// Jan 5 2026 is the Monday of ISO week 2.
	assert.Equal(t, 1, entries[0].Bar.StartColumn)
	assert.InDelta(t, 2.0, entries[0].Bar.Width, 1e-9)
}

func TestScheduleService_ExpandAllFlag(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	seedFarm(t, db)

	svc := newScheduleService(db)
	first, err := svc.Build(ctx, ScheduleQuery{Year: 2026, Granularity: timeline.GranularityMonth, Scope: "schedule"})
	require.NoError(t, err)

	// Collapse the field, then force expansion back via the flag.
	require.Equal(t, timeline.RowField, first.Rows[1].Kind())
	require.NoError(t, svc.ToggleRow(ctx, "schedule", first.Rows[1].RowID()))

	collapsed, err := svc.Build(ctx, ScheduleQuery{Year: 2026, Granularity: timeline.GranularityMonth, Scope: "schedule"})
	require.NoError(t, err)
	assert.Len(t, collapsed.Rows, 3)

	expanded, err := svc.Build(ctx, ScheduleQuery{Year: 2026, Granularity: timeline.GranularityMonth, Scope: "schedule", ExpandAll: true})
	require.NoError(t, err)
	assert.Len(t, expanded.Rows, 5)
}
