package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncate shortens value to at most width display cells, ending with an
// ellipsis when anything was cut. Wide runes count as two cells.
func truncate(value string, width int) string {
	value = strings.TrimSpace(value)
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= runewidth.StringWidth(ellipsis) {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, ellipsis)
}

// padRight pads value with spaces to width display cells.
func padRight(value string, width int) string {
	return runewidth.FillRight(value, width)
}

// fit truncates and pads value to exactly width display cells.
func fit(value string, width int) string {
	if width <= 0 {
		return ""
	}
	return padRight(truncate(value, width), width)
}
