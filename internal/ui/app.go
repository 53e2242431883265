package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/vantage/internal/alerts"
	"github.com/five82/vantage/internal/prefs"
	"github.com/five82/vantage/internal/state"
	"github.com/five82/vantage/internal/stream"
)

// wheelLines is how far one mouse wheel notch scrolls.
const wheelLines = 3

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Source     *stream.Source // nil when the feed is disabled
	Visibility *stream.Visibility
	Logger     *zap.Logger

	ThemeName string
	Filter    alerts.Filter
	PrefsPath string

	RowHeight       int
	Overscan        int
	AnchorThreshold int
	SearchDebounce  time.Duration
	RefreshInterval time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      *state.Store
	source     *stream.Source
	visibility *stream.Visibility
	logger     *zap.Logger
	prefsPath  string
	refresh    time.Duration
	debounce   time.Duration
	listOpts   listOptions

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	fault    *faultBoundary

	// Data state
	version uint64
	all     []alerts.Alert
	counts  alerts.Counts

	// Filter state
	filter    alerts.Filter
	query     string
	search    textinput.Model
	searchSeq int

	list *listView

	// dashboard renders the main screen; replaced in tests.
	dashboard func(Model) string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("ui")

	refresh := opts.RefreshInterval
	if refresh <= 0 {
		refresh = DefaultRefreshInterval
	}
	debounce := opts.SearchDebounce
	if debounce < 0 {
		debounce = DefaultSearchDebounce
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	listOpts := listOptions{
		RowHeight: opts.RowHeight,
		Overscan:  opts.Overscan,
		Threshold: opts.AnchorThreshold,
		Logger:    logger,
	}

	return Model{
		ctx:        ctx,
		store:      opts.Store,
		source:     opts.Source,
		visibility: opts.Visibility,
		logger:     logger,
		prefsPath:  prefsPath,
		refresh:    refresh,
		debounce:   debounce,
		listOpts:   listOpts,
		keys:       DefaultKeyMap(),
		help:       newHelp(theme),
		theme:      theme,
		fault:      newFaultBoundary(logger),
		filter:     opts.Filter,
		search:     newSearchInput(theme),
		list:       newListView(listOpts),
		dashboard:  Model.renderDashboard,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refresh)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store, 0))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.Resize(m.width, m.listHeight())
		m.search.Width = max(m.width-6, 10)
		return m, nil

	case tea.FocusMsg:
		m.setVisible(true)
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store, m.version)
		}
		return m, nil

	case tea.BlurMsg:
		m.setVisible(false)
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store, m.version))
		}
		cmds = append(cmds, tickCmd(m.refresh))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case searchDebounceMsg:
		return m.handleSearchDebounce(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.fault.Tripped() {
		return m.renderFault()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	out, ok := m.fault.Guard(func() string { return m.dashboard(m) })
	if !ok {
		return m.renderFault()
	}
	return out
}

// renderDashboard renders header, list and status line.
func (m Model) renderDashboard() string {
	if m.width < LayoutMinWidth || m.listHeight() < 1 {
		styles := m.theme.Styles()
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("Terminal too small"))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.list.View(m.theme))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) listHeight() int {
	return max(m.height-headerHeight-footerHeight, 0)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.fault.Tripped() {
		switch {
		case key.Matches(msg, m.keys.Retry):
			m.resetDashboard()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()

	case key.Matches(msg, m.keys.TogglePause):
		if m.source != nil {
			m.source.SetPaused(!m.source.Paused())
			m.logger.Info("stream toggled", zap.Bool("paused", m.source.Paused()))
		}

	case key.Matches(msg, m.keys.Search):
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ClearSearch):
		m.clearSearch()

	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(m.filter.Next())
	case key.Matches(msg, m.keys.PrevFilter):
		m.setFilter(m.filter.Prev())
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(alerts.FilterAll)
	case key.Matches(msg, m.keys.FilterCrit):
		m.setFilter(alerts.FilterCritical)
	case key.Matches(msg, m.keys.FilterHigh):
		m.setFilter(alerts.FilterHigh)
	case key.Matches(msg, m.keys.FilterLow):
		m.setFilter(alerts.FilterLow)

	case key.Matches(msg, m.keys.Down):
		m.list.ScrollRows(1)
	case key.Matches(msg, m.keys.Up):
		m.list.ScrollRows(-1)
	case key.Matches(msg, m.keys.Top):
		m.list.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.list.Bottom()
	case key.Matches(msg, m.keys.PageDown):
		m.list.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.list.PageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.list.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.list.HalfPageUp()
	}

	return m, nil
}

// handleMouse scrolls the list with the mouse wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.fault.Tripped() || m.showHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.ScrollLines(-wheelLines)
	case tea.MouseButtonWheelDown:
		m.list.ScrollLines(wheelLines)
	}
	return m, nil
}

// applySnapshot installs a new store snapshot.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if snap.Version != 0 && snap.Version == m.version {
		return
	}
	m.version = snap.Version
	m.all = snap.Alerts
	m.counts = alerts.Count(m.all)
	m.list.SetAlerts(m.visibleAlerts())
}

func (m *Model) visibleAlerts() []alerts.Alert {
	return alerts.Apply(m.all, m.filter, m.query)
}

// applyFilters re-derives the visible collection after a filter or search
// change. The list adjusts the scroll position before the next render.
func (m *Model) applyFilters() {
	m.list.Refilter(m.visibleAlerts())
}

func (m *Model) setFilter(f alerts.Filter) {
	if f == m.filter {
		return
	}
	m.filter = f
	m.applyFilters()
	m.savePrefs()
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.help = newHelp(t)
	applySearchTheme(&m.search, t)
}

func (m *Model) setVisible(visible bool) {
	if m.visibility != nil {
		m.visibility.SetVisible(visible)
	}
}

// resetDashboard restores filters, search and scroll state and clears a
// fault.
func (m *Model) resetDashboard() {
	m.filter = alerts.FilterAll
	m.query = ""
	m.search.SetValue("")
	m.search.Blur()
	m.searchSeq++
	m.showHelp = false
	m.list = newListView(m.listOpts)
	m.list.Resize(m.width, m.listHeight())
	m.list.Reset(alerts.Apply(m.all, m.filter, m.query))
	m.fault.Reset()
	m.savePrefs()
	m.logger.Info("dashboard reset")
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, SeverityFilter: m.filter.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", zap.Error(err))
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store, seen uint64) tea.Cmd {
	return func() tea.Msg {
		snap, changed := store.SnapshotIfChanged(seen)
		if !changed {
			return nil
		}
		return snapshotMsg(snap)
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
