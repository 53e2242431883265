package ui

import (
	"strings"
	"time"

	"github.com/five82/vantage/internal/alerts"
)

// timeNow decides which timestamps count as today.
var timeNow = time.Now

// formatTimestamp renders ts as HH:MM when it falls on the same local day as
// now and as DD/MM HH:MM otherwise.
func formatTimestamp(ts, now time.Time) string {
	local := ts.In(now.Location())
	y1, m1, d1 := local.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return local.Format("15:04")
	}
	return local.Format("02/01 15:04")
}

// rowColumns returns the message column width for a row of width cells and
// whether the source IP column fits.
func rowColumns(width int) (msgWidth int, showIP bool) {
	showIP = width >= LayoutCompactWidth
	msgWidth = width - timestampWidth - badgeWidth - 2
	if showIP {
		msgWidth -= ipWidth + 1
	}
	return max(msgWidth, 0), showIP
}

// renderColumnHeadings renders the heading line above the rows, aligned to
// the columns renderRow draws at the same width.
func renderColumnHeadings(width int, theme Theme) string {
	styles := theme.Styles()
	bg := NewBgStyle(theme.Surface)
	msgWidth, showIP := rowColumns(width)

	var b strings.Builder
	b.WriteString(bg.Render(fit("Timestamp", timestampWidth), styles.AccentText))
	b.WriteString(bg.Space())
	b.WriteString(bg.Render(fit(" Severity", badgeWidth), styles.AccentText))
	b.WriteString(bg.Space())
	b.WriteString(bg.Render(fit("Description", msgWidth), styles.AccentText))
	if showIP {
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(fit("Source IP", ipWidth), styles.AccentText))
	}
	return bg.FillLine(b.String(), width)
}

// renderRow renders the alert at index of items as height lines of width
// cells. It reports false when index is outside items, which happens when a
// stale window outlives a shrinking collection.
func renderRow(index int, items []alerts.Alert, width, height int, theme Theme) (string, bool) {
	if index < 0 || index >= len(items) {
		return "", false
	}
	a := items[index]
	styles := theme.Styles()
	bg := NewBgStyle(theme.SurfaceAlt)
	msgWidth, showIP := rowColumns(width)

	var b strings.Builder
	b.WriteString(bg.Render(fit(formatTimestamp(a.Timestamp, timeNow()), timestampWidth), styles.MutedText))
	b.WriteString(bg.Space())
	b.WriteString(styles.SeverityBadge(a.Severity).Render(fit(strings.ToUpper(string(a.Severity)), badgeWidth-2)))
	b.WriteString(bg.Space())
	b.WriteString(bg.Render(fit(a.Message, msgWidth), styles.Text))
	if showIP {
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(fit(a.IP, ipWidth), styles.FaintText))
	}

	lines := make([]string, 0, max(height, 1))
	lines = append(lines, bg.FillLine(b.String(), width))
	if height > 1 {
		for len(lines) < height-1 {
			lines = append(lines, bg.Spaces(width))
		}
		lines = append(lines, bg.Render(strings.Repeat("─", max(width, 0)), styles.FaintText))
	}
	return strings.Join(lines, "\n"), true
}
