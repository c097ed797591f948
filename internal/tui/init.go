package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/javiermolinar/lunacal/internal/config"
	"github.com/javiermolinar/lunacal/internal/db"
	"github.com/javiermolinar/lunacal/internal/tui/theme"
)

// InitState describes what the first-run screen will create.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string

	// Settings written with a new config file.
	Workdays []string
	Lunar    bool
	Theme    string
}

// DetectInitState reports which of the config and database files are missing.
// The settings are checked first so the first-run screen never writes a config
// that the next start would reject.
func DetectInitState(cfg *config.Config) (InitState, error) {
	if err := cfg.Validate(); err != nil {
		return InitState{}, fmt.Errorf("invalid config: %w", err)
	}
	if !theme.IsAvailable(cfg.UI.Theme) {
		return InitState{}, fmt.Errorf("invalid config: unknown theme %q", cfg.UI.Theme)
	}

	state := InitState{
		ConfigPath: config.DefaultConfigPath(),
		DBPath:     cfg.Storage.DBPath,
		Workdays:   cfg.Schedule.Workdays,
		Lunar:      cfg.Calendar.Lunar,
		Theme:      cfg.UI.Theme,
	}

	files := []struct {
		name    string
		path    string
		missing *bool
	}{
		{"config", state.ConfigPath, &state.ConfigMissing},
		{"database", state.DBPath, &state.DBMissing},
	}
	for _, f := range files {
		missing, err := fileMissing(f.path)
		if err != nil {
			return InitState{}, fmt.Errorf("checking %s path: %w", f.name, err)
		}
		*f.missing = missing
	}

	state.NeedsInit = state.ConfigMissing || state.DBMissing
	return state, nil
}

// fileMissing reports whether nothing exists at path. A directory in place of
// the file is an error.
func fileMissing(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	case err != nil:
		return false, err
	case info.IsDir():
		return false, fmt.Errorf("%s is a directory", path)
	}
	return false, nil
}

// initializeStorage writes the config and opens the schedule database named
// in the init state.
func (m Model) initializeStorage() (Model, error) {
	if m.initState.ConfigMissing {
		if err := m.config.SaveTo(m.initState.ConfigPath); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
	}

	if m.repo == nil {
		repo, err := db.Open(m.initState.DBPath)
		if err != nil {
			return m, fmt.Errorf("initializing database: %w", err)
		}
		m.repo = repo
	}

	m.initState = InitState{ConfigPath: m.initState.ConfigPath, DBPath: m.initState.DBPath}
	return m, nil
}
