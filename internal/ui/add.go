package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lunacal/internal/dateutil"
	"github.com/javiermolinar/lunacal/internal/schedule"
)

func (a *App) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [date] [label]",
		Short: "Add a schedule label to a day",
		Long: `Attach a schedule label to a day.

The date can be YYYY-MM-DD, today, tomorrow, yesterday, next-week,
a weekday name (next occurrence) or next-<weekday>. Past dates are allowed.
Everything after the date is the label.

Example:
  lunacal add 2024-02-14 "Dinner with Mei"
  lunacal add friday Team lunch`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseRelativeDate(args[0], a.now(), true)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}

			e, err := schedule.New(dateutil.KeyOf(date), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.AddEntry(context.Background(), e); err != nil {
				return fmt.Errorf("adding schedule: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d: %s on %s\n", e.ID, e.Label, e.DateKey)
			return nil
		},
	}
}
