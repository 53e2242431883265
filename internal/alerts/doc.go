// Package alerts defines the alert record and the filter/search facade that
// turns the canonical collection into the ordered collection a list view
// displays.
//
// # Records
//
// An Alert carries a stable ID, a timestamp used as the display order key,
// a severity and the descriptive fields shown in the table (message, source
// IP, sensor). IDs survive filtering and stream appends, so callers can track
// rows by identity rather than by index.
//
// # Facade
//
// Apply is a pure function of (records, filter, query). It never mutates the
// input and always returns a fresh slice sorted newest-first; ties keep
// their input order. Consumers should react to the length of the result and
// never rely on slice identity.
//
//	visible := alerts.Apply(snapshot.Alerts, alerts.FilterHigh, "malware")
package alerts
