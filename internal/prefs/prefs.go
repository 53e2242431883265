// Package prefs persists the dashboard's user preferences.
// Preferences are stored in ~/.config/vantage/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/vantage/internal/alerts"
	"github.com/five82/vantage/internal/config"
)

// Prefs holds choices the user makes inside the dashboard.
type Prefs struct {
	Theme          string `toml:"theme"`
	SeverityFilter string `toml:"severity_filter"`
}

const (
	defaultPrefsPath = "~/.config/vantage/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used before anything is saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, SeverityFilter: alerts.FilterAll.String()}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Filter returns the saved severity filter.
func (p Prefs) Filter() alerts.Filter {
	return alerts.ParseFilter(p.SeverityFilter)
}

// Load reads preferences from path. Preferences are cosmetic, so a missing,
// unreadable or malformed file yields defaults rather than an error.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults(), nil
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), nil
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	p.SeverityFilter = p.Filter().String()
	return p, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
