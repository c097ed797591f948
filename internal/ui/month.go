package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/schedule"
	"github.com/javiermolinar/lunacal/internal/tui"
)

func (a *App) monthCmd() *cobra.Command {
	var (
		month   string
		width   int
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print a month calendar",
		Long: `Print a month grid with lunar dates, workday markers and schedules.

Days outside the month are dimmed and today is highlighted.
The cell width adapts to the terminal unless --width is given.`,
		Example: `  lunacal month
  lunacal month --month=2024-02
  lunacal month -m 2025-01 --no-color`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			opts, err := tui.CalendarOptions(a.config)
			if err != nil {
				return err
			}

			r := &textRenderer{}
			cal, err := calendar.New(r, nil, append(opts, calendar.WithClock(a.now))...)
			if err != nil {
				return err
			}

			if month != "" {
				m, err := parseMonth(month)
				if err != nil {
					return err
				}
				cal.Goto(m)
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			schedules, err := schedule.Load(context.Background(), a.repo, cal.Current())
			if err != nil {
				return err
			}
			cal.UpdateSchedules(schedules)

			if width <= 0 {
				width = termWidth()
			}
			PrintMonth(cmd.OutOrStdout(), r.month, &r.grid, GridOpts{
				CellWidth:    cellWidthFor(width),
				MaxSchedules: a.config.UI.MaxSchedules,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to show (YYYY-MM, default: current month)")
	cmd.Flags().IntVar(&width, "width", 0, "Output width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// parseMonth parses a YYYY-MM month.
func parseMonth(s string) (calendar.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return calendar.Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return calendar.MonthOf(t), nil
}
