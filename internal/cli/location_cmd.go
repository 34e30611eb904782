package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/cli/formatter"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

func newLocationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Manage locations",
	}

	cmd.AddCommand(
		newLocationAddCmd(app),
		newLocationListCmd(app),
		newLocationUpdateCmd(app),
		newLocationRemoveCmd(app),
	)

	return cmd
}

func newLocationAddCmd(app *App) *cobra.Command {
	var name, notes string
	var area float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new location",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := &domain.Location{
				Name:  name,
				Area:  areaFromFlags(cmd.Flags(), area),
				Notes: notes,
			}
			if err := app.Locations.Create(context.Background(), l); err != nil {
				return err
			}
			fmt.Printf("Created location %s (id %d)\n", l.Name, l.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Location name")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	areaFlag(cmd.Flags(), &area)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLocationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := app.Locations.List(context.Background())
			if err != nil {
				return err
			}
			if len(locations) == 0 {
				fmt.Println("No locations found.")
				return nil
			}

			rows := make([][]string, len(locations))
			for i, l := range locations {
				rows[i] = []string{
					fmt.Sprintf("%d", l.ID),
					l.Name,
					formatArea(l.Area),
					l.Notes,
				}
			}
			fmt.Println(formatter.RenderTable(
				[]string{"ID", "NAME", "AREA", "NOTES"}, rows,
				formatter.AlignRight, formatter.AlignLeft, formatter.AlignRight,
			))
			return nil
		},
	}
}

func newLocationUpdateCmd(app *App) *cobra.Command {
	var name, notes string
	var area float64

	cmd := &cobra.Command{
		Use:   "update ID|NAME",
		Short: "Update a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLocationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			l, err := app.Locations.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				l.Name = name
			}
			if cmd.Flags().Changed("notes") {
				l.Notes = notes
			}
			if a := areaFromFlags(cmd.Flags(), area); a != nil {
				l.Area = a
			}

			if err := app.Locations.Update(ctx, l); err != nil {
				return err
			}
			fmt.Printf("Updated location %s\n", l.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	areaFlag(cmd.Flags(), &area)

	return cmd
}

func newLocationRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID|NAME",
		Short: "Delete a location and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLocationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Locations.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed location %d\n", id)
			return nil
		},
	}
}

// formatArea renders an optional area for table cells.
func formatArea(a *float64) string {
	if a == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *a)
}
