// Package tui is an interactive terminal board editor that paints walls and
// endpoints and animates an A* search across them.
//
// # Description
//
// The cursor is moved with the arrow keys; s and e place the start and end,
// w toggles a wall, x clears a cell, space searches, esc stops a search and
// c resets the board. The search runs on its own goroutine and pauses for
// Config.StepDelay at every onStep, while a ticker redraws the board from
// grid snapshots.
//
// # Thread Safety
//
// The Model is owned by the bubbletea event loop. The only state shared with
// the search goroutine is the grid, which is internally locked, and the
// cancel flag, which is atomic.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/telemetry"
)

// =============================================================================
// Messages
// =============================================================================

// searchDoneMsg carries the outcome of a finished search.
type searchDoneMsg struct {
	res  *astar.Result
	err  error
	took time.Duration
}

// frameMsg asks for a redraw while a search is running.
type frameMsg struct{}

// =============================================================================
// Config
// =============================================================================

// Config tunes the editor.
type Config struct {
	// StepDelay pauses the search after every expansion and path step.
	StepDelay time.Duration

	// FrameInterval is how often the board is redrawn during a search.
	FrameInterval time.Duration

	// Logger receives one record per search; nil discards.
	Logger *slog.Logger

	// Metrics, when set, observes every finished search.
	Metrics *telemetry.Metrics
}

// DefaultConfig returns a 10ms step delay redrawn at about 30 frames a second.
func DefaultConfig() Config {
	return Config{
		StepDelay:     10 * time.Millisecond,
		FrameInterval: 33 * time.Millisecond,
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Italic(true).MarginTop(1)
)

// =============================================================================
// Model
// =============================================================================

// Model is the bubbletea model for the board editor.
type Model struct {
	config Config
	keys   keyMap
	help   help.Model

	g      *grid.Grid
	cursor grid.Position

	start, end       grid.Position
	hasStart, hasEnd bool

	running  bool
	cancel   *atomic.Bool
	status   string
	last     *astar.Result
	quitting bool
}

// New returns an editor over g. Existing Start and End cells are adopted as
// the current endpoints.
func New(g *grid.Grid, cfg Config) *Model {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultConfig().FrameInterval
	}
	m := &Model{
		config: cfg,
		keys:   defaultKeyMap(),
		help:   help.New(),
		g:      g,
		cancel: new(atomic.Bool),
		status: "place a start (s) and an end (e), paint walls (w), then press space",
	}
	m.start, m.end, m.hasStart, m.hasEnd = g.Endpoints()

	return m
}

// Result returns the outcome of the most recent search, or nil.
func (m *Model) Result() *astar.Result { return m.last }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case frameMsg:
		if m.running {
			return m, m.frame()
		}
		return m, nil

	case searchDoneMsg:
		m.running = false
		m.finish(msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.running {
			m.cancel.Store(true)
			m.quitting = true
			return nil
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if m.running {
			m.cancel.Store(true)
		}
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	// The board is frozen while a search owns it.
	if m.running {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Start):
		m.placeStart()
	case key.Matches(msg, m.keys.End):
		m.placeEnd()
	case key.Matches(msg, m.keys.Wall):
		m.toggleWall()
	case key.Matches(msg, m.keys.Erase):
		m.erase()
	case key.Matches(msg, m.keys.Reset):
		m.g.Reset()
		m.hasStart, m.hasEnd = false, false
		m.last = nil
		m.status = "board reset"
	case key.Matches(msg, m.keys.Run):
		return m.search()
	}
	return nil
}

func (m *Model) move(dr, dc int) {
	next := grid.Position{Row: m.cursor.Row + dr, Col: m.cursor.Col + dc}
	if m.g.InBounds(next) {
		m.cursor = next
	}
}

// prepareEdit clears leftover search markings so edits start from a clean board.
func (m *Model) prepareEdit() {
	if m.last != nil {
		m.g.ClearSearch()
		m.last = nil
	}
}

func (m *Model) placeStart() {
	m.prepareEdit()
	if m.hasEnd && m.end == m.cursor {
		m.hasEnd = false
	}
	if m.hasStart {
		_ = m.g.Clear(m.start)
	}
	_ = m.g.SetStart(m.cursor)
	m.start, m.hasStart = m.cursor, true
	m.status = fmt.Sprintf("start at %v", m.cursor)
}

func (m *Model) placeEnd() {
	m.prepareEdit()
	if m.hasStart && m.start == m.cursor {
		m.hasStart = false
	}
	if m.hasEnd {
		_ = m.g.Clear(m.end)
	}
	_ = m.g.SetEnd(m.cursor)
	m.end, m.hasEnd = m.cursor, true
	m.status = fmt.Sprintf("end at %v", m.cursor)
}

func (m *Model) toggleWall() {
	m.prepareEdit()
	s, _ := m.g.State(m.cursor)
	switch {
	case s.Endpoint():
		m.status = "endpoints cannot become walls; clear them first (x)"
	case s == grid.Blocked:
		_ = m.g.SetBlocked(m.cursor, false)
	default:
		_ = m.g.SetBlocked(m.cursor, true)
	}
}

func (m *Model) erase() {
	m.prepareEdit()
	_ = m.g.Clear(m.cursor)
	if m.hasStart && m.start == m.cursor {
		m.hasStart = false
	}
	if m.hasEnd && m.end == m.cursor {
		m.hasEnd = false
	}
}

// search recomputes adjacency and launches the search goroutine together
// with the redraw ticker.
func (m *Model) search() tea.Cmd {
	if !m.hasStart || !m.hasEnd {
		m.status = "a start and an end are required"
		return nil
	}
	m.g.ClearSearch()
	m.g.ComputeNeighbors()
	m.cancel.Store(false)
	m.running = true
	m.last = nil
	m.status = "searching…"

	g, start, end := m.g, m.start, m.end
	cancel, delay := m.cancel, m.config.StepDelay
	log := m.config.Logger.With("run_id", uuid.NewString())

	run := func() tea.Msg {
		onStep := func() {
			if delay > 0 {
				time.Sleep(delay)
			}
		}
		began := time.Now()
		res, err := astar.Run(g, start, end, onStep, cancel.Load, astar.WithLogger(log))
		return searchDoneMsg{res: res, err: err, took: time.Since(began)}
	}
	return tea.Batch(run, m.frame())
}

func (m *Model) frame() tea.Cmd {
	return tea.Tick(m.config.FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) finish(msg searchDoneMsg) {
	if msg.err != nil {
		m.status = "search failed: " + msg.err.Error()
		m.config.Logger.Error("search failed", "error", msg.err)
		return
	}
	m.last = msg.res
	if m.config.Metrics != nil {
		m.config.Metrics.Observe(msg.res, msg.took)
	}
	switch msg.res.Status {
	case astar.Found:
		m.status = fmt.Sprintf("found: %d steps, %d cells expanded", msg.res.Cost, msg.res.Expanded)
	case astar.Unreachable:
		m.status = fmt.Sprintf("no path: end is unreachable (%d cells expanded)", msg.res.Expanded)
	case astar.Canceled:
		m.status = fmt.Sprintf("stopped after %d cells", msg.res.Expanded)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("A* path visualization"))
	b.WriteByte('\n')
	var cursor *grid.Position
	if !m.running {
		c := m.cursor
		cursor = &c
	}
	b.WriteString(render.Styled(m.g.States(), nil, cursor))
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}
