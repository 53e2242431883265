package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// streamState describes the alert feed for the status line.
func (m Model) streamState() string {
	switch {
	case m.source == nil:
		return "off"
	case !m.visibility.Visible():
		return "hidden"
	case m.source.Paused():
		return "paused"
	default:
		return "live"
	}
}

// followState describes where new alerts will appear.
func (m Model) followState() string {
	if m.list.Following() {
		return "following"
	}
	if n := m.list.Unseen(); n > 0 {
		return fmt.Sprintf("anchored +%d new", n)
	}
	return "anchored"
}

// renderStatus renders the bottom status line.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	state := m.streamState()
	stateStyle := styles.MutedText
	switch state {
	case "live":
		stateStyle = styles.SuccessText
	case "paused":
		stateStyle = styles.WarningText
	}

	parts := []string{
		bg.Render("● "+state, stateStyle),
		bg.Render(m.followState(), styles.AccentText),
	}
	if first, last := m.list.Position(); last > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d-%d of %d", first, last, m.list.Len()), styles.FaintText))
	}
	if m.query != "" {
		parts = append(parts, bg.Render("search: "+truncate(m.query, 24), styles.MutedText))
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	left := bg.Space() + strings.Join(parts, sep)

	m.help.Width = max(m.width-lipgloss.Width(left)-2, 0)
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		return bg.FillLine(left, m.width)
	}
	return bg.FillLine(left+bg.Spaces(gap)+right, m.width)
}
