package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/cli/formatter"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

func newBedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bed",
		Short: "Manage beds",
	}

	cmd.AddCommand(
		newBedAddCmd(app),
		newBedListCmd(app),
		newBedUpdateCmd(app),
		newBedRemoveCmd(app),
	)

	return cmd
}

func newBedAddCmd(app *App) *cobra.Command {
	var name, field, notes string
	var area float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new bed under a field",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			fieldID, err := resolveFieldID(ctx, app, field)
			if err != nil {
				return err
			}

			b := &domain.Bed{
				FieldID: fieldID,
				Name:    name,
				Area:    areaFromFlags(cmd.Flags(), area),
				Notes:   notes,
			}
			if err := app.Beds.Create(ctx, b); err != nil {
				return err
			}
			fmt.Printf("Created bed %s (id %d)\n", b.Name, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Bed name")
	cmd.Flags().StringVar(&field, "field", "", "Parent field (id or name)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	areaFlag(cmd.Flags(), &area)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func newBedListCmd(app *App) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List beds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var beds []domain.Bed
			var err error
			if field != "" {
				fieldID, rerr := resolveFieldID(ctx, app, field)
				if rerr != nil {
					return rerr
				}
				beds, err = app.Beds.ListByField(ctx, fieldID)
			} else {
				beds, err = app.Beds.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(beds) == 0 {
				fmt.Println("No beds found.")
				return nil
			}

			rows := make([][]string, len(beds))
			for i, b := range beds {
				rows[i] = []string{
					fmt.Sprintf("%d", b.ID),
					b.Name,
					fmt.Sprintf("%d", b.FieldID),
					formatArea(b.Area),
					b.Notes,
				}
			}
			fmt.Println(formatter.RenderTable(
				[]string{"ID", "NAME", "FIELD", "AREA", "NOTES"}, rows,
				formatter.AlignRight, formatter.AlignLeft, formatter.AlignRight, formatter.AlignRight,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "Only beds of this field (id or name)")

	return cmd
}

func newBedUpdateCmd(app *App) *cobra.Command {
	var name, notes string
	var area float64

	cmd := &cobra.Command{
		Use:   "update ID|NAME",
		Short: "Update a bed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBedID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Beds.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				b.Name = name
			}
			if cmd.Flags().Changed("notes") {
				b.Notes = notes
			}
			if a := areaFromFlags(cmd.Flags(), area); a != nil {
				b.Area = a
			}

			if err := app.Beds.Update(ctx, b); err != nil {
				return err
			}
			fmt.Printf("Updated bed %s\n", b.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	areaFlag(cmd.Flags(), &area)

	return cmd
}

func newBedRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID|NAME",
		Short: "Delete a bed and its plantings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBedID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Beds.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed bed %d\n", id)
			return nil
		},
	}
}
