package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lunacal/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedules in a date range",
		Long: `List all schedule labels within a date range.

If no dates are specified, lists today's schedules.
If only --from is specified, lists schedules for that single day.
If both --from and --to are specified, lists schedules in that range (inclusive).`,
		Example: `  lunacal list
  lunacal list --from=2024-02-14
  lunacal list --from=2024-02-01 --to=2024-02-29`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if startDate == "" {
				startDate = dateutil.KeyOf(a.now())
			}
			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			entries, err := a.repo.ListEntries(context.Background(), dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing schedules: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No schedules found in the specified date range.")
				return nil
			}
			PrintEntries(out, entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "from", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "to", "", "End date (YYYY-MM-DD, defaults to the start date)")

	return cmd
}
