package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lunacal/internal/config"
	"github.com/javiermolinar/lunacal/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Manage the lunacal configuration file.

Without a subcommand, prints the effective configuration.
Environment variables (LUNACAL_*) override values from the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.showConfig(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.showConfig(cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd.OutOrStdout(), config.DefaultConfigPath(), force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration interactively",
		Long: `Prompt for every setting, showing the current value in brackets.
Press enter to keep a value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigEdit(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	})

	return cmd
}

func (a *App) showConfig(out io.Writer) error {
	path := config.DefaultConfigPath()
	fmt.Fprintf(out, "Config file: %s", path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprint(out, " (not created, showing defaults)")
	}
	fmt.Fprint(out, "\n\n")
	printConfig(out, a.config)
	return nil
}

func runConfigInit(out io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}

func runConfigEdit(in io.Reader, out io.Writer, path string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", path)

	// Load existing config or start from defaults
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	reader := bufio.NewReader(in)

	cfg.Schedule.Workdays = promptSlice(reader, out, "Workdays (comma-separated)", cfg.Schedule.Workdays)
	cfg.Calendar.Lunar = promptBool(reader, out, "Show lunar dates", cfg.Calendar.Lunar)
	cfg.Calendar.LunarFestivals = promptBool(reader, out, "Show festivals and solar terms", cfg.Calendar.LunarFestivals)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.MaxSchedules = promptInt(reader, out, "Schedules per day", cfg.UI.MaxSchedules)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "[schedule]")
	fmt.Fprintf(out, "  workdays        = %s\n", strings.Join(cfg.Schedule.Workdays, ", "))
	fmt.Fprintln(out, "\n[calendar]")
	fmt.Fprintf(out, "  lunar           = %t\n", cfg.Calendar.Lunar)
	fmt.Fprintf(out, "  lunar_festivals = %t\n", cfg.Calendar.LunarFestivals)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path         = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme           = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  max_schedules   = %d\n", cfg.UI.MaxSchedules)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptSlice(reader *bufio.Reader, out io.Writer, label string, current []string) []string {
	input := promptValue(reader, out, label, strings.Join(current, ", "))
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	def := "n"
	if current {
		def = "y"
	}
	for {
		switch strings.ToLower(promptValue(reader, out, label+" (y/n)", def)) {
		case "y", "yes", "true":
			return true
		case "n", "no", "false":
			return false
		}
		fmt.Fprintln(out, "  Please answer y or n.")
	}
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, fmt.Sprint(current))
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q.\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	if !theme.IsAvailable(current) {
		current = theme.DefaultName
	}
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
