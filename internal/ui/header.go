package ui

import (
	"fmt"
	"strings"

	"github.com/five82/vantage/internal/alerts"
)

const appTitle = "VANTAGE ANALYTICS"

// renderHeader renders the title bar, severity tabs, search box and column
// headings.
func (m Model) renderHeader() string {
	bg := NewBgStyle(m.theme.Surface)
	headings := renderColumnHeadings(max(m.width-scrollbarWidth, 0), m.theme)
	return strings.Join([]string{
		m.renderTitleBar(),
		m.renderTabs(),
		m.renderSearch(),
		bg.FillLine(headings, m.width),
	}, "\n")
}

// renderTitleBar renders the title with shown/total and per-severity counts.
func (m Model) renderTitleBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render(appTitle, styles.Title),
		bg.Render(fmt.Sprintf("%d/%d alerts", m.list.Len(), m.counts.Total), styles.Text),
	}
	for _, sev := range alerts.Severities {
		label := fmt.Sprintf("● %d %s", m.counts.For(sev), sev)
		parts = append(parts, bg.Render(label, styles.SeverityText(sev)))
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return bg.FillLine(bg.Space()+strings.Join(parts, sep), m.width)
}

// renderTabs renders one tab per severity filter with the active one
// highlighted.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	tabs := make([]string, 0, len(alerts.Filters()))
	for _, f := range alerts.Filters() {
		label := filterLabel(f)
		if f == m.filter {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Background(bg.Color()).Render(label))
		}
	}
	return bg.FillLine(bg.Space()+strings.Join(tabs, bg.Space()), m.width)
}

func filterLabel(f alerts.Filter) string {
	name := f.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
