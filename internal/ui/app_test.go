package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/five82/vantage/internal/alerts"
	"github.com/five82/vantage/internal/prefs"
	"github.com/five82/vantage/internal/state"
	"github.com/five82/vantage/internal/stream"
)

type harness struct {
	t         *testing.T
	m         Model
	store     *state.Store
	prefsPath string
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	withNow(t, baseTime)

	if opts.Store == nil {
		opts.Store = state.NewStore(100)
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}
	opts.Logger = zaptest.NewLogger(t)

	h := &harness{t: t, m: New(opts), store: opts.Store, prefsPath: opts.PrefsPath}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 20})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	require.True(h.t, ok, "Update returned %T", next)
	h.m = m
	return cmd
}

func (h *harness) key(s string) tea.Cmd {
	h.t.Helper()
	switch s {
	case "esc":
		return h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "space":
		return h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	case "tab":
		return h.send(tea.KeyMsg{Type: tea.KeyTab})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// sync pulls the latest store snapshot the way the refresh tick does.
func (h *harness) sync() {
	h.t.Helper()
	cmd := fetchSnapshotCmd(h.store, h.m.version)
	if msg := cmd(); msg != nil {
		h.send(msg)
	}
}

func TestModel_RendersSnapshot(t *testing.T) {
	h := newHarness(t, Options{})
	h.store.Replace(makeAlerts("a", 6))
	h.sync()

	view := h.m.View()
	assert.Contains(t, view, appTitle)
	assert.Contains(t, view, "6/6 alerts")
	assert.Contains(t, view, "event a-0")
	assert.Contains(t, view, searchPlaceholder)
	assert.Contains(t, view, "following")
	assert.Contains(t, view, "1-6 of 6")
	assert.Len(t, strings.Split(view, "\n"), 20)
}

func TestModel_EmptyState(t *testing.T) {
	h := newHarness(t, Options{})
	assert.Contains(t, h.m.View(), emptyListMessage)
}

func TestModel_FilterKeysNarrowListAndPersist(t *testing.T) {
	h := newHarness(t, Options{})
	h.store.Replace(makeAlerts("a", 9))
	h.sync()

	h.key("2")
	assert.Equal(t, alerts.FilterCritical, h.m.filter)
	assert.Equal(t, 3, h.m.list.Len())
	assert.Contains(t, h.m.View(), "3/9 alerts")

	saved, err := prefs.Load(h.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "critical", saved.SeverityFilter)

	h.key("tab")
	assert.Equal(t, alerts.FilterHigh, h.m.filter)
	h.key("1")
	assert.Equal(t, 9, h.m.list.Len())
}

func TestModel_SearchIsDebounced(t *testing.T) {
	h := newHarness(t, Options{SearchDebounce: DefaultSearchDebounce})
	records := makeAlerts("a", 5)
	records[3].Message = "Brute force login attempt on SSH"
	h.store.Replace(records)
	h.sync()

	h.key("/")
	require.True(t, h.m.search.Focused())
	for _, r := range "ssh" {
		h.key(string(r))
	}
	assert.Equal(t, "ssh", h.m.search.Value())
	assert.Equal(t, "", h.m.query, "query waits for the debounce")
	assert.Equal(t, 5, h.m.list.Len())

	h.send(searchDebounceMsg{seq: h.m.searchSeq - 1})
	assert.Equal(t, "", h.m.query, "stale tick is ignored")

	h.send(searchDebounceMsg{seq: h.m.searchSeq})
	assert.Equal(t, "ssh", h.m.query)
	assert.Equal(t, 1, h.m.list.Len())

	h.key("esc")
	assert.False(t, h.m.search.Focused())
	assert.Equal(t, "", h.m.search.Value())
	assert.Equal(t, 5, h.m.list.Len())
}

func TestModel_SearchTypingDoesNotTriggerShortcuts(t *testing.T) {
	h := newHarness(t, Options{})
	h.key("/")
	cmd := h.key("q")
	assert.Equal(t, "q", h.m.search.Value())
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit)
	}
	h.key("enter")
	assert.False(t, h.m.search.Focused())
	assert.Equal(t, "q", h.m.query)
}

func TestModel_AnchorsWhenScrolledAway(t *testing.T) {
	h := newHarness(t, Options{})
	h.store.Replace(makeAlerts("a", 40))
	h.sync()

	h.key("j")
	h.key("j")
	require.Equal(t, 2, h.m.list.Offset())

	h.store.Prepend(makeAlerts("new", 1)[0])
	h.sync()

	assert.Equal(t, 3, h.m.list.Offset())
	assert.Contains(t, h.m.View(), "anchored +1 new")

	h.key("g")
	assert.Contains(t, h.m.View(), "following")
}

func TestModel_WideningFilterIsNotCountedAsNew(t *testing.T) {
	h := newHarness(t, Options{})
	h.store.Replace(makeAlerts("a", 90))
	h.sync()

	h.key("2")
	require.Equal(t, 30, h.m.list.Len())
	h.key("j")
	h.key("j")
	h.key("j")
	require.Equal(t, 3, h.m.list.Offset())

	h.key("1")
	assert.Equal(t, 90, h.m.list.Len())
	assert.Zero(t, h.m.list.Unseen())
	view := h.m.View()
	assert.Contains(t, view, "anchored")
	assert.NotContains(t, view, "anchored +")
}

func TestModel_RendersColumnHeadings(t *testing.T) {
	h := newHarness(t, Options{})
	h.store.Replace(makeAlerts("a", 3))
	h.sync()

	view := h.m.View()
	for _, heading := range []string{"Timestamp", "Severity", "Description", "Source IP"} {
		assert.Contains(t, view, heading)
	}
	assert.Len(t, strings.Split(view, "\n"), 20)

	h.send(tea.WindowSizeMsg{Width: 80, Height: 20})
	view = h.m.View()
	assert.Contains(t, view, "Description")
	assert.NotContains(t, view, "Source IP")
}

func TestModel_FocusControlsVisibility(t *testing.T) {
	vis := &stream.Visibility{}
	src := stream.New(stream.Options{Store: state.NewStore(10), Visibility: vis})
	h := newHarness(t, Options{Source: src, Visibility: vis})

	assert.Equal(t, "live", h.m.streamState())
	h.send(tea.BlurMsg{})
	assert.False(t, vis.Visible())
	assert.Equal(t, "hidden", h.m.streamState())
	h.send(tea.FocusMsg{})
	assert.True(t, vis.Visible())
}

func TestModel_SpaceTogglesPause(t *testing.T) {
	src := stream.New(stream.Options{Store: state.NewStore(10)})
	h := newHarness(t, Options{Source: src})

	h.key("space")
	assert.True(t, src.Paused())
	assert.Equal(t, "paused", h.m.streamState())
	h.key("space")
	assert.False(t, src.Paused())

	noFeed := newHarness(t, Options{})
	assert.Equal(t, "off", noFeed.m.streamState())
}

func TestModel_ThemeCyclePersists(t *testing.T) {
	h := newHarness(t, Options{ThemeName: "Nightfox"})
	h.key("T")
	assert.Equal(t, "Kanagawa", h.m.theme.Name)

	saved, err := prefs.Load(h.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "Kanagawa", saved.Theme)
}

func TestModel_HelpOverlay(t *testing.T) {
	h := newHarness(t, Options{})
	h.key("?")
	view := h.m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Pause/resume stream")

	h.key("x")
	assert.False(t, h.m.showHelp)
}

func TestModel_FaultBoundaryRecovers(t *testing.T) {
	h := newHarness(t, Options{})
	h.store.Replace(makeAlerts("a", 4))
	h.sync()
	h.key("3")
	require.Equal(t, alerts.FilterHigh, h.m.filter)

	h.m.dashboard = func(Model) string { panic("row exploded") }
	view := h.m.View()
	assert.Contains(t, view, "Something went wrong")
	assert.Contains(t, view, "row exploded")
	assert.Contains(t, view, "press r to try again")
	assert.True(t, h.m.fault.Tripped())

	h.key("j")
	assert.True(t, h.m.fault.Tripped(), "other keys leave the fault in place")

	h.m.dashboard = Model.renderDashboard
	h.key("r")
	assert.False(t, h.m.fault.Tripped())
	assert.Equal(t, alerts.FilterAll, h.m.filter)
	assert.Equal(t, 4, h.m.list.Len())
	assert.Contains(t, h.m.View(), appTitle)

	saved, err := prefs.Load(h.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "all", saved.SeverityFilter, "reset filter is persisted")
}

func TestModel_TickSchedulesRefresh(t *testing.T) {
	h := newHarness(t, Options{})
	assert.NotNil(t, h.send(tickMsg{}))

	assert.Nil(t, fetchSnapshotCmd(h.store, h.m.version)(), "unchanged store yields no message")
}

func TestModel_LoadsSavedPrefsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"Slate\"\n"), 0o644))

	p, err := prefs.Load(path)
	require.NoError(t, err)
	h := newHarness(t, Options{ThemeName: p.Theme, Filter: p.Filter(), PrefsPath: path})
	assert.Equal(t, "Slate", h.m.theme.Name)
	assert.Equal(t, alerts.FilterAll, h.m.filter)
}
