package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/cli/formatter"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/service"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/timeline"
)

// scheduleScope is the ui_state scope for the schedule view's expansion set.
const scheduleScope = "schedule"

func newScheduleCmd(app *App) *cobra.Command {
	var flags scheduleFlags

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the yearly planting timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := flags.sortSpec()
			if err != nil {
				return err
			}
			year := flags.year
			if year == 0 {
				year = time.Now().Year()
			}
			query := service.ScheduleQuery{
				Year:        year,
				Granularity: timeline.ParseGranularity(flags.granularity),
				Sort:        spec,
				Scope:       scheduleScope,
				ExpandAll:   flags.expandAll,
			}

			if flags.plain || app.IsInteractive == nil || !app.IsInteractive() {
				sched, err := app.Schedule.Build(context.Background(), query)
				if err != nil {
					return err
				}
				fmt.Println(renderSchedule(sched, -1))
				return nil
			}

			model := newScheduleModel(app, query)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	addScheduleFlags(cmd.Flags(), app, &flags)

	return cmd
}

// renderSchedule turns a built schedule into its text form. cursor marks the
// selected row index, or -1 for the non-interactive rendering.
func renderSchedule(sched *service.Schedule, cursor int) string {
	cellWidth := 8
	if sched.Granularity == timeline.GranularityWeek {
		cellWidth = 3
	}

	rows := make([]formatter.TimelineRow, len(sched.Rows))
	for i, row := range sched.Rows {
		entries := sched.Bars[row.RowID()]
		bars := make([]formatter.TimelineBar, len(entries))
		for j, e := range entries {
			bars[j] = formatter.TimelineBar{
				Start: float64(e.Bar.StartColumn) + e.Bar.LeftOffset,
				Width: e.Bar.Width,
				Label: e.Planting.Crop,
				Draft: e.Planting.IsDraft(),
			}
		}
		rows[i] = formatter.TimelineRow{
			Label:    formatter.RowLabel(row),
			Style:    formatter.RowStyle(row.Kind()),
			Selected: i == cursor,
			Bars:     bars,
		}
	}

	header := formatter.Header(fmt.Sprintf("Schedule %d (%s)", sched.Year, sched.Granularity))
	return header + "\n" + formatter.RenderTimeline(sched.Columns, rows, cellWidth)
}
