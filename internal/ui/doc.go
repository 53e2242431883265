// Package ui implements the alert dashboard as a Bubble Tea program.
//
// # Layout
//
// The screen is split into three regions:
//
//   - Header: title with shown/total and per-severity counts, severity tabs
//     and the search box
//   - List: the windowed alert list with a scrollbar track
//   - Status line: stream state, follow state, visible range and key hints
//
// # List windowing
//
// Only rows intersecting the viewport (plus overscan) are rendered, so the
// cost of a frame does not depend on how many alerts are retained. The list
// is backed by a virtual.Virtualizer positioned over a virtual.Viewport; one
// unit of offset is one terminal line.
//
// Every new collection (stream tick, filter change, search) passes through
// an anchor.Controller inside Update, before View runs:
//
//   - at the top, new alerts appear at the top
//   - scrolled away, the viewport moves down by the inserted rows so the
//     rows being read stay in place, and the status line shows how many
//     arrived above
//   - a shrinking collection returns to the top
//
// # Data flow
//
// A stream.Source writes into a state.Store from its own goroutine. The
// model pulls a snapshot on every refresh tick and only re-derives the list
// when the snapshot version changed. Focus and blur events from the terminal
// flip a stream.Visibility so the feed pauses while the dashboard is not
// being looked at.
//
// # Failure handling
//
// A panic while rendering the dashboard is recovered and replaced by an
// error screen; pressing r resets filters, search and scroll state.
package ui
