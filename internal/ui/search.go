package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vantage/internal/alerts"
)

const searchPlaceholder = "Search alerts..."

// searchDebounceMsg fires once typing pauses. Only the message carrying the
// latest sequence number applies the query.
type searchDebounceMsg struct {
	seq int
}

func newSearchInput(theme Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "/ "
	ti.CharLimit = 100
	applySearchTheme(&ti, theme)
	return ti
}

func applySearchTheme(ti *textinput.Model, theme Theme) {
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
}

func debounceCmd(seq int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return searchDebounceMsg{seq: seq} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// handleSearchKey handles keyboard input while the search box has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ClearSearch):
		m.clearSearch()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.search.Blur()
		m.applyQuery()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	m.searchSeq++
	return m, tea.Batch(cmd, debounceCmd(m.searchSeq, m.debounce))
}

// handleSearchDebounce applies the typed query if nothing was typed since.
func (m Model) handleSearchDebounce(msg searchDebounceMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		return m, nil
	}
	m.applyQuery()
	return m, nil
}

// applyQuery makes the search box value the active query.
func (m *Model) applyQuery() {
	m.searchSeq++ // drop pending debounce ticks
	query := alerts.NormalizeQuery(m.search.Value())
	if query == m.query {
		return
	}
	m.query = query
	m.applyFilters()
}

// clearSearch empties the search box and the active query.
func (m *Model) clearSearch() {
	m.search.SetValue("")
	m.search.Blur()
	m.applyQuery()
}

// renderSearch renders the search box line.
func (m Model) renderSearch() string {
	bgColor := m.theme.Surface
	if m.search.Focused() {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	return bg.FillLine(bg.Space()+m.search.View(), m.width)
}
