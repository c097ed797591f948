// Package ui provides the lunacal command line interface.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lunacal/internal/config"
	"github.com/javiermolinar/lunacal/internal/db"
	"github.com/javiermolinar/lunacal/internal/schedule"
	"github.com/javiermolinar/lunacal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     schedule.Repository
	ownsRepo bool // repo was opened by ensureRepo and must be closed
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging
	now      func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo schedule.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "lunacal",
		Short: "A month calendar with lunar dates and schedules",
		Long: `Lunacal shows a month calendar in the terminal.

Every day carries its Chinese lunar date, a workday or rest day marker,
and the schedule labels you attach to it.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.renameCmd())
	a.root.AddCommand(a.listCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lunacal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database unless a repository was supplied.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	repo, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if !a.ownsRepo || a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	a.ownsRepo = false
	return err
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
