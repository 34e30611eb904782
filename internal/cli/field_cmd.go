package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/cli/formatter"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

func newFieldCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Manage fields",
	}

	cmd.AddCommand(
		newFieldAddCmd(app),
		newFieldListCmd(app),
		newFieldUpdateCmd(app),
		newFieldRemoveCmd(app),
	)

	return cmd
}

func newFieldAddCmd(app *App) *cobra.Command {
	var name, location, notes string
	var area float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new field under a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			locationID, err := resolveLocationID(ctx, app, location)
			if err != nil {
				return err
			}

			f := &domain.Field{
				LocationID: locationID,
				Name:       name,
				Area:       areaFromFlags(cmd.Flags(), area),
				Notes:      notes,
			}
			if err := app.Fields.Create(ctx, f); err != nil {
				return err
			}
			fmt.Printf("Created field %s (id %d)\n", f.Name, f.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Field name")
	cmd.Flags().StringVar(&location, "location", "", "Parent location (id or name)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	areaFlag(cmd.Flags(), &area)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func newFieldListCmd(app *App) *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var fields []domain.Field
			var err error
			if location != "" {
				locationID, rerr := resolveLocationID(ctx, app, location)
				if rerr != nil {
					return rerr
				}
				fields, err = app.Fields.ListByLocation(ctx, locationID)
			} else {
				fields, err = app.Fields.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(fields) == 0 {
				fmt.Println("No fields found.")
				return nil
			}

			rows := make([][]string, len(fields))
			for i, f := range fields {
				rows[i] = []string{
					fmt.Sprintf("%d", f.ID),
					f.Name,
					fmt.Sprintf("%d", f.LocationID),
					formatArea(f.Area),
					f.Notes,
				}
			}
			fmt.Println(formatter.RenderTable(
				[]string{"ID", "NAME", "LOCATION", "AREA", "NOTES"}, rows,
				formatter.AlignRight, formatter.AlignLeft, formatter.AlignRight, formatter.AlignRight,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "Only fields of this location (id or name)")

	return cmd
}

func newFieldUpdateCmd(app *App) *cobra.Command {
	var name, notes string
	var area float64

	cmd := &cobra.Command{
		Use:   "update ID|NAME",
		Short: "Update a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveFieldID(ctx, app, args[0])
			if err != nil {
				return err
			}
			f, err := app.Fields.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				f.Name = name
			}
			if cmd.Flags().Changed("notes") {
				f.Notes = notes
			}
			if a := areaFromFlags(cmd.Flags(), area); a != nil {
				f.Area = a
			}

			if err := app.Fields.Update(ctx, f); err != nil {
				return err
			}
			fmt.Printf("Updated field %s\n", f.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	areaFlag(cmd.Flags(), &area)

	return cmd
}

func newFieldRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID|NAME",
		Short: "Delete a field and its beds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveFieldID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Fields.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed field %d\n", id)
			return nil
		},
	}
}
