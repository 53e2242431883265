// Package stream simulates a live alert feed.
//
// A Source prepends one generated alert to the shared state.Store on a fixed
// interval. It never builds a backlog: when the terminal reports it lost
// focus, or the user paused the feed, the tick is dropped rather than
// queued, and the next tick resumes normally.
//
// Alerts come from a Generator whose randomness, clock and ID source are
// injectable so tests can force specific severities and timestamps.
package stream
