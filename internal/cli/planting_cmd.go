package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/cli/formatter"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

func newPlantingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planting",
		Short: "Manage plantings",
	}

	cmd.AddCommand(
		newPlantingAddCmd(app),
		newPlantingListCmd(app),
		newPlantingRemoveCmd(app),
	)

	return cmd
}

func newPlantingAddCmd(app *App) *cobra.Command {
	var bed, crop, start, end, notes string
	var quantity float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a planting on a bed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			bedID, err := resolveBedID(ctx, app, bed)
			if err != nil {
				return err
			}
			startDate, err := domain.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := domain.ParseDate(end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			p := &domain.Planting{
				BedID:     bedID,
				Crop:      crop,
				StartDate: startDate,
				EndDate:   endDate,
				Notes:     notes,
			}
			if cmd.Flags().Changed("quantity") {
				p.Quantity = &quantity
			}
			if err := app.Plantings.Create(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Planted %s on bed %d, %s to %s (id %d)\n",
				p.Crop, p.BedID, domain.FormatDate(p.StartDate), domain.FormatDate(p.EndDate), p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&bed, "bed", "", "Target bed (id or name)")
	cmd.Flags().StringVar(&crop, "crop", "", "Crop name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Quantity annotation (optional)")
	_ = cmd.MarkFlagRequired("bed")
	_ = cmd.MarkFlagRequired("crop")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newPlantingListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plantings with their bed and field",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := app.Plantings.ListDetails(context.Background())
			if err != nil {
				return err
			}
			if len(details) == 0 {
				fmt.Println("No plantings found.")
				return nil
			}

			rows := make([][]string, len(details))
			for i, d := range details {
				quantity := "-"
				if d.Planting.Quantity != nil {
					quantity = strconv.FormatFloat(*d.Planting.Quantity, 'g', -1, 64)
				}
				rows[i] = []string{
					fmt.Sprintf("%d", d.Planting.ID),
					d.Planting.Crop,
					d.FieldName,
					d.BedName,
					domain.FormatDate(d.Planting.StartDate),
					domain.FormatDate(d.Planting.EndDate),
					quantity,
				}
			}
			fmt.Println(formatter.RenderTable(
				[]string{"ID", "CROP", "FIELD", "BED", "START", "END", "QTY"}, rows,
				formatter.AlignRight,
			))
			return nil
		},
	}
}

func newPlantingRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a planting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid planting id %q", args[0])
			}
			if err := app.Plantings.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed planting %d\n", id)
			return nil
		},
	}
}
