package stream

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/five82/vantage/internal/alerts"
)

var messages = map[alerts.Severity][]string{
	alerts.SeverityCritical: {
		"Ransomware signature detected on file share",
		"Outbound C2 beacon to known malicious host",
		"Privilege escalation via kernel exploit",
		"Malware dropper executed from temp directory",
		"Credential dump tool detected in memory",
	},
	alerts.SeverityHigh: {
		"Brute force login attempt on SSH",
		"Suspicious PowerShell encoded command",
		"Port scan from internal host",
		"Malware hash match in email attachment",
		"Unusual data transfer volume to external IP",
	},
	alerts.SeverityLow: {
		"Failed login for disabled account",
		"TLS certificate expiring within 30 days",
		"New device joined the network",
		"DNS query to newly registered domain",
		"Firewall rule hit on deprecated port",
	},
}

// Generator produces synthetic alerts.
type Generator struct {
	Random func() float64
	Now    func() time.Time
	NewID  func() string
}

// NewGenerator returns a generator backed by math/rand/v2, the wall clock and
// random UUIDs.
func NewGenerator() *Generator {
	return &Generator{
		Random: rand.Float64,
		Now:    time.Now,
		NewID:  func() string { return uuid.NewString() },
	}
}

// SeverityFor maps a value in [0, 1) onto a severity.
func SeverityFor(v float64) alerts.Severity {
	switch {
	case v > 0.8:
		return alerts.SeverityCritical
	case v > 0.4:
		return alerts.SeverityHigh
	default:
		return alerts.SeverityLow
	}
}

// Next returns a new alert.
func (g *Generator) Next() alerts.Alert {
	severity := SeverityFor(g.random())
	catalogue := messages[severity]

	return alerts.Alert{
		ID:        g.id(),
		Timestamp: g.now().UTC(),
		Sensor:    fmt.Sprintf("Edge-Node-%d", g.pick(10)+1),
		Severity:  severity,
		Message:   catalogue[g.pick(len(catalogue))],
		IP:        fmt.Sprintf("192.168.1.%d", g.pick(254)+1),
	}
}

// pick returns an index in [0, n).
func (g *Generator) pick(n int) int {
	idx := int(g.random() * float64(n))
	return min(max(idx, 0), n-1)
}

func (g *Generator) random() float64 {
	if g.Random == nil {
		return rand.Float64()
	}
	return g.Random()
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func (g *Generator) id() string {
	if g.NewID == nil {
		return uuid.NewString()
	}
	return g.NewID()
}
