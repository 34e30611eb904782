package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/cli"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/config"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/db"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/repository"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("FARMPLAN_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	locationRepo := repository.NewSQLiteLocationRepo(database)
	fieldRepo := repository.NewSQLiteFieldRepo(database)
	bedRepo := repository.NewSQLiteBedRepo(database)
	plantingRepo := repository.NewSQLitePlantingRepo(database)
	uiStateStore := repository.NewSQLiteUIStateStore(database)

	// Wire unit of work for the transactional importer
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Locations: service.NewLocationService(locationRepo),
		Fields:    service.NewFieldService(fieldRepo, locationRepo),
		Beds:      service.NewBedService(bedRepo, fieldRepo),
		Plantings: service.NewPlantingService(plantingRepo, bedRepo),
		Schedule:  service.NewScheduleService(locationRepo, fieldRepo, bedRepo, plantingRepo, uiStateStore),
		Import:    service.NewImportService(uow),

		DefaultYear:        cfg.Year,
		DefaultGranularity: cfg.Granularity,
		DefaultSort:        cfg.Sort,
	}

	// Detect interactive terminal for the schedule view.
	app.IsInteractive = func() bool {
		if cfg.NoColor {
			return false
		}
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
