package cli

import (
	"github.com/spf13/cobra"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/service"
)

// App holds references to all service interfaces used by CLI commands,
// plus the config-derived defaults.
type App struct {
	Locations service.LocationService
	Fields    service.FieldService
	Beds      service.BedService
	Plantings service.PlantingService
	Schedule  service.ScheduleService
	Import    service.ImportService

	DefaultYear        int
	DefaultGranularity string
	DefaultSort        string

	// IsInteractive reports whether stdin/stdout are attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "farmplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "farmplan",
		Short: "Farm layout and planting schedule planner",
	}

	root.AddCommand(
		newLocationCmd(app),
		newFieldCmd(app),
		newBedCmd(app),
		newPlantingCmd(app),
		newImportCmd(app),
		newScheduleCmd(app),
	)

	return root
}
