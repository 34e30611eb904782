package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a farm plan from a JSON file",
		Long: `Import locations, fields, beds and plantings from a JSON plan file.
The whole file is validated up front and imported in one transaction;
on any failure the database is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPlan(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d locations, %d fields, %d beds, %d plantings\n",
				result.LocationCount, result.FieldCount, result.BedCount, result.PlantingCount)
			return nil
		},
	}
}
