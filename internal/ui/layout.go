package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the source IP column is
	// hidden.
	LayoutCompactWidth = 100

	// LayoutMinWidth is the narrowest terminal the dashboard renders into.
	LayoutMinWidth = 40
)

// Fixed regions around the alert list.
const (
	headerHeight   = 4 // title bar, severity tabs, search box, column headings
	footerHeight   = 1 // status line
	scrollbarWidth = 1
)

// Timing constants.
const (
	// DefaultRefreshInterval is how often the model pulls a store snapshot.
	DefaultRefreshInterval = 250 * time.Millisecond

	// DefaultSearchDebounce delays applying a typed query.
	DefaultSearchDebounce = 300 * time.Millisecond
)

// Column widths of a rendered row.
const (
	timestampWidth = 11 // "DD/MM HH:MM"
	badgeWidth     = 10 // "CRITICAL" plus padding
	ipWidth        = 15 // "255.255.255.255"
)
