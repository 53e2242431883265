package alerts

import (
	"sort"
	"strings"
)

// Filter selects which severities are shown.
type Filter int

const (
	FilterAll Filter = iota
	FilterCritical
	FilterHigh
	FilterLow
)

var filterOrder = []Filter{FilterAll, FilterCritical, FilterHigh, FilterLow}

// Filters returns the filters in tab order.
func Filters() []Filter {
	return filterOrder
}

// String returns the lower-case filter name.
func (f Filter) String() string {
	switch f {
	case FilterCritical:
		return "critical"
	case FilterHigh:
		return "high"
	case FilterLow:
		return "low"
	default:
		return "all"
	}
}

// ParseFilter maps a name back to a Filter; unknown names select FilterAll.
func ParseFilter(name string) Filter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "critical":
		return FilterCritical
	case "high":
		return FilterHigh
	case "low":
		return FilterLow
	default:
		return FilterAll
	}
}

// Next returns the following filter, wrapping around.
func (f Filter) Next() Filter {
	return filterOrder[(f.index()+1)%len(filterOrder)]
}

// Prev returns the preceding filter, wrapping around.
func (f Filter) Prev() Filter {
	return filterOrder[(f.index()-1+len(filterOrder))%len(filterOrder)]
}

func (f Filter) index() int {
	for i, candidate := range filterOrder {
		if candidate == f {
			return i
		}
	}
	return 0
}

// Matches reports whether sev passes the filter.
func (f Filter) Matches(sev Severity) bool {
	switch f {
	case FilterCritical:
		return sev == SeverityCritical
	case FilterHigh:
		return sev == SeverityHigh
	case FilterLow:
		return sev == SeverityLow
	default:
		return true
	}
}

// NormalizeQuery trims the raw search input.
func NormalizeQuery(query string) string {
	return strings.TrimSpace(query)
}

// Apply filters records by severity and query and returns a new slice sorted
// newest-first. The message match is case-insensitive; the IP match is a
// plain substring match on the raw query.
func Apply(records []Alert, filter Filter, query string) []Alert {
	query = NormalizeQuery(query)
	lowered := strings.ToLower(query)

	out := make([]Alert, 0, len(records))
	for _, a := range records {
		if !filter.Matches(a.Severity) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(a.Message), lowered) && !strings.Contains(a.IP, query) {
			continue
		}
		out = append(out, a)
	}
	SortNewestFirst(out)
	return out
}

// SortNewestFirst orders records by descending timestamp in place, keeping
// the input order of equal timestamps.
func SortNewestFirst(records []Alert) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}
