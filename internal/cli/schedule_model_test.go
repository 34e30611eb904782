package cli

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/service"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/teatest"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/testutil"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires a full App over an in-memory database.
func newTestApp(t *testing.T) (*App, *sql.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)

	locations := repository.NewSQLiteLocationRepo(db)
	fields := repository.NewSQLiteFieldRepo(db)
	beds := repository.NewSQLiteBedRepo(db)
	plantings := repository.NewSQLitePlantingRepo(db)
	uiState := repository.NewSQLiteUIStateStore(db)

	app := &App{
		Locations: service.NewLocationService(locations),
		Fields:    service.NewFieldService(fields, locations),
		Beds:      service.NewBedService(beds, fields),
		Plantings: service.NewPlantingService(plantings, beds),
		Schedule:  service.NewScheduleService(locations, fields, beds, plantings, uiState),
		Import:    service.NewImportService(testutil.NewTestUoW(db)),

		DefaultYear:        2026,
		DefaultGranularity: "month",
		DefaultSort:        "name",
		IsInteractive:      func() bool { return false },
	}
	return app, db
}

func seedSchedule(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()

	loc := testutil.NewTestLocation("Home Farm")
	require.NoError(t, app.Locations.Create(ctx, loc))
	other := testutil.NewTestLocation("Rented Acre")
	require.NoError(t, app.Locations.Create(ctx, other))

	field := testutil.NewTestField(loc.ID, "North Field")
	require.NoError(t, app.Fields.Create(ctx, field))
	bed := testutil.NewTestBed(field.ID, "Bed 1")
	require.NoError(t, app.Beds.Create(ctx, bed))

	p := testutil.NewTestPlanting(bed.ID, "Carrots", "2026-03-05", "2026-05-20")
	require.NoError(t, app.Plantings.Create(ctx, p))
}

func testQuery() service.ScheduleQuery {
	return service.ScheduleQuery{
		Year:        2026,
		Granularity: timeline.GranularityMonth,
		Scope:       scheduleScope,
	}
}

func TestScheduleModel_InitialRender(t *testing.T) {
	app, _ := newTestApp(t)
	seedSchedule(t, app)

	d := teatest.New(t, newScheduleModel(app, testQuery()))
	d.Start(120, 40)

	view := d.View()
	assert.Contains(t, view, "Home Farm")
	assert.Contains(t, view, "North Field")
	assert.Contains(t, view, "Bed 1")
	assert.Contains(t, view, "█")
	assert.Contains(t, view, "Jan")
}

func TestScheduleModel_ToggleCollapsesField(t *testing.T) {
	app, _ := newTestApp(t)
	seedSchedule(t, app)

	d := teatest.New(t, newScheduleModel(app, testQuery()))
	d.Start(120, 40)

	// Cursor starts on the first location; move to the field and collapse it.
	d.Down()
	d.Enter()

	view := d.View()
	assert.Contains(t, view, "North Field")
	assert.NotContains(t, view, "Bed 1")

	// Toggle again restores the bed.
	d.Enter()
	assert.Contains(t, d.View(), "Bed 1")
}

func TestScheduleModel_GranularityFlip(t *testing.T) {
	app, _ := newTestApp(t)
	seedSchedule(t, app)

	d := teatest.New(t, newScheduleModel(app, testQuery()))
	d.Start(200, 40)

	d.Type('g')
	view := d.View()
	assert.Contains(t, view, "WEEK")
	assert.Contains(t, view, "W1")

	d.Type('g')
	assert.Contains(t, d.View(), "MONTH")
}

func TestScheduleModel_YearNavigation(t *testing.T) {
	app, _ := newTestApp(t)
	seedSchedule(t, app)

	d := teatest.New(t, newScheduleModel(app, testQuery()))
	d.Start(120, 40)

	d.Type('+')
	view := d.View()
	assert.Contains(t, view, "2027")
	// The carrots planting lives entirely in 2026.
	assert.NotContains(t, view, "█")

	d.Type('-')
	assert.Contains(t, d.View(), "2026")
}

func TestScheduleModel_QuitKey(t *testing.T) {
	app, _ := newTestApp(t)
	seedSchedule(t, app)

	d := teatest.New(t, newScheduleModel(app, testQuery()))
	d.Start(120, 40)

	d.Type('q')
	assert.True(t, d.Quit)
}

func TestScheduleModel_AddFormOpensAndCancels(t *testing.T) {
	app, _ := newTestApp(t)
	seedSchedule(t, app)

	d := teatest.New(t, newScheduleModel(app, testQuery()))
	d.Start(120, 40)

	d.Type('a')
	assert.Contains(t, d.View(), "Crop")

	d.Esc()
	view := d.View()
	assert.NotContains(t, view, "Crop")
	assert.Contains(t, view, "Home Farm")
}

func TestScheduleModel_AddFormWithoutBeds(t *testing.T) {
	app, _ := newTestApp(t)

	d := teatest.New(t, newScheduleModel(app, testQuery()))
	d.Start(120, 40)

	d.Type('a')
	assert.Contains(t, d.View(), "no beds yet")
}

func TestRenderSchedule_PlainOutput(t *testing.T) {
	app, _ := newTestApp(t)
	seedSchedule(t, app)

	sched, err := app.Schedule.Build(context.Background(), testQuery())
	require.NoError(t, err)

	out := renderSchedule(sched, -1)
	lines := strings.Split(out, "\n")
	// Header block (2 lines) + column header + 4 rows.
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Contains(t, out, "SCHEDULE 2026")
	assert.Contains(t, out, "▾ Home Farm")
	assert.Contains(t, out, "• Bed 1")
}
