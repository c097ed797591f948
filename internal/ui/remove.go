package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [schedule-id]",
		Aliases: []string{"rm"},
		Short:   "Remove a schedule label",
		Long: `Remove a schedule label by its ID. IDs are shown by "lunacal list".

Example:
  lunacal remove 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			e, err := a.repo.GetEntry(ctx, id)
			if err != nil {
				return fmt.Errorf("finding schedule #%d: %w", id, err)
			}
			if err := a.repo.RemoveEntry(ctx, id); err != nil {
				return fmt.Errorf("removing schedule: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed #%d: %s from %s\n", e.ID, e.Label, e.DateKey)
			return nil
		},
	}
}

func (a *App) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [schedule-id] [label]",
		Short: "Change the label of a schedule",
		Long: `Replace the label of a schedule, keeping its date and position.

Example:
  lunacal rename 42 "Dinner with Wei"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}

			label := strings.Join(args[1:], " ")
			if err := a.repo.RenameEntry(context.Background(), id, label); err != nil {
				return fmt.Errorf("renaming schedule #%d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Renamed #%d: %s\n", id, strings.TrimSpace(label))
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid schedule ID %q", s)
	}
	return id, nil
}
