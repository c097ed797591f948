package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lunacal/internal/calendar"
	"github.com/javiermolinar/lunacal/internal/config"
	"github.com/javiermolinar/lunacal/internal/dateutil"
	"github.com/javiermolinar/lunacal/internal/db"
	"github.com/javiermolinar/lunacal/internal/lunar"
	"github.com/javiermolinar/lunacal/internal/schedule"
	"github.com/javiermolinar/lunacal/internal/tui/commands"
	"github.com/javiermolinar/lunacal/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Typing a new schedule label
	ModeInit        // Waiting for the user to confirm first-run setup
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModePrompt:
		return "Prompt"
	case ModeInit:
		return "Init"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// noSelection marks that no schedule label in the cursor cell is selected.
const noSelection = -1

// surface is the calendar's render target. The component paints into it and
// the model reads the last painted grid in View. Calendar events are queued
// here until Update drains them.
type surface struct {
	month  calendar.Month
	grid   calendar.Grid
	paints int
	events []calendar.Event
}

// Paint records the grid the calendar wants displayed.
func (s *surface) Paint(month calendar.Month, grid calendar.Grid) {
	s.month = month
	s.grid = grid
	s.paints++
}

func (s *surface) record(e calendar.Event) {
	LogEvent(e)
	s.events = append(s.events, e)
}

func (s *surface) drain() []calendar.Event {
	events := s.events
	s.events = nil
	return events
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   schedule.Repository
	config *config.Config
	now    func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Calendar
	cal     *calendar.Component
	surface *surface

	// State
	cursor    int // Grid index of the cursor cell
	selected  int // Schedule index in the cursor cell, or noSelection
	mode      Mode
	loading   bool
	loaded    calendar.Month
	hasLoaded bool
	entries   map[string][]*schedule.Entry // Entries of the loaded window by date key
	initState InitState

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width    int
	height   int
	colWidth int

	// Messages
	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
		if state.NeedsInit {
			m.mode = ModeInit
		}
	}
}

// WithClock sets the source of the current time.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// CalendarOptions builds the calendar options described by cfg.
func CalendarOptions(cfg *config.Config) ([]calendar.Option, error) {
	workdays, err := cfg.Workdays()
	if err != nil {
		return nil, err
	}

	opts := []calendar.Option{calendar.WithWorkdays(workdays)}
	if cfg.Calendar.Lunar {
		converter := lunar.NewChinese(lunar.WithFestivals(cfg.Calendar.LunarFestivals))
		opts = append(opts, calendar.WithLunar(lunar.NewCache(converter)))
	}
	return opts, nil
}

// New creates a new TUI model.
func New(repo schedule.Repository, cfg *config.Config, opts ...ModelOption) (*Model, error) {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "Label, or @tomorrow Label"
	ti.CharLimit = 256
	ti.Width = 40
	ti.PlaceholderStyle = styles.PromptPlaceholderStyle
	ti.TextStyle = styles.PromptInputTextStyle
	ti.PromptStyle = styles.PromptInputTextStyle
	ti.Cursor.TextStyle = styles.PromptInputTextStyle

	m := &Model{
		repo:     repo,
		config:   cfg,
		now:      time.Now,
		theme:    t,
		styles:   styles,
		selected: noSelection,
		mode:     ModeNormal,
		prompt:   ti,
		colWidth: defaultColWidth,
		entries:  make(map[string][]*schedule.Entry),
	}
	for _, opt := range opts {
		opt(m)
	}

	calOpts, err := CalendarOptions(cfg)
	if err != nil {
		return nil, err
	}
	m.surface = &surface{}
	calOpts = append(calOpts,
		calendar.WithClock(m.now),
		calendar.WithSubscriber(m.surface.record),
	)

	m.cal, err = calendar.New(m.surface, nil, calOpts...)
	if err != nil {
		return nil, err
	}
	// The initial MonthChanged is answered by Init.
	m.surface.drain()
	m.cursor = m.todayIndex()

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.mode == ModeInit {
		return nil
	}
	return commands.LoadSchedules(m.repo, m.cal.Current())
}

// Run starts the TUI.
func Run(repo schedule.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo schedule.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialRepo := repo
	var initState InitState

	if repo == nil {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		initState = state
		if !state.NeedsInit {
			store, err := db.Open(state.DBPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			repo = store
		}
	}

	model, err := New(repo, cfg, WithInitState(initState))
	if err != nil {
		if initialRepo == nil && repo != nil {
			_ = repo.Close()
		}
		return err
	}

	p := tea.NewProgram(*model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if initialRepo == nil {
		if m, ok := finalModel.(Model); ok && m.repo != nil {
			_ = m.repo.Close()
		}
	}
	return err
}

// grid returns the grid last painted by the calendar.
func (m Model) grid() calendar.Grid {
	return m.surface.grid
}

// cursorCell returns the cell under the cursor.
func (m Model) cursorCell() calendar.Cell {
	return m.surface.grid[m.cursor]
}

// todayIndex returns today's grid index, or the first day of the displayed
// month when today is not shown.
func (m Model) todayIndex() int {
	grid := m.grid()
	if i := grid.Index(dateutil.KeyOf(m.now())); i >= 0 {
		return i
	}
	month := m.cal.Current()
	return dateutil.WeekdayOfFirst(month.Year, month.Month)
}

// maxSchedules returns how many labels a cell shows before collapsing.
func (m Model) maxSchedules() int {
	return max(m.config.UI.MaxSchedules, 0)
}

// visibleSchedules returns how many labels of the cell are drawn.
func (m Model) visibleSchedules(cell calendar.Cell) int {
	return min(len(cell.Schedules), m.scheduleSlots())
}

// entryAt returns the stored entry behind the i-th label of a date.
func (m Model) entryAt(dateKey string, i int) *schedule.Entry {
	entries := m.entries[dateKey]
	if i < 0 || i >= len(entries) {
		return nil
	}
	return entries[i]
}
