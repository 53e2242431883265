package alerts

import (
	"fmt"
	"strings"
	"time"
)

// Severity classifies an alert.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityLow      Severity = "low"
)

// Severities lists the known severities from most to least urgent.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityLow}

// ParseSeverity normalises s and reports whether it names a known severity.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityCritical, SeverityHigh, SeverityLow:
		return sev, nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// Alert is a single security event.
type Alert struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Sensor    string    `json:"sensor"`
	Severity  Severity  `json:"severity"`
	IP        string    `json:"ip"`
	Message   string    `json:"message"`
}

// Validate reports the first structural problem with the alert.
func (a Alert) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("alert id is empty")
	}
	if a.Timestamp.IsZero() {
		return fmt.Errorf("alert %s: timestamp is missing", a.ID)
	}
	if _, err := ParseSeverity(string(a.Severity)); err != nil {
		return fmt.Errorf("alert %s: %w", a.ID, err)
	}
	return nil
}

// Counts tallies records per severity.
type Counts struct {
	Total    int
	Critical int
	High     int
	Low      int
}

// Count returns per-severity totals for records.
func Count(records []Alert) Counts {
	c := Counts{Total: len(records)}
	for _, a := range records {
		switch a.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityHigh:
			c.High++
		case SeverityLow:
			c.Low++
		}
	}
	return c
}

// For returns the count for a single severity.
func (c Counts) For(sev Severity) int {
	switch sev {
	case SeverityCritical:
		return c.Critical
	case SeverityHigh:
		return c.High
	case SeverityLow:
		return c.Low
	default:
		return 0
	}
}
