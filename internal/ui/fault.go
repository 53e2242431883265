package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// faultBoundary turns a panic while rendering into a recoverable screen.
// It is shared by pointer between model copies so a fault caught in View
// survives until Update resets it.
type faultBoundary struct {
	message string
	logger  *zap.Logger
}

func newFaultBoundary(logger *zap.Logger) *faultBoundary {
	return &faultBoundary{logger: logger}
}

// Tripped reports whether a fault is being shown.
func (f *faultBoundary) Tripped() bool {
	return f.message != ""
}

// Message returns the recovered panic text.
func (f *faultBoundary) Message() string {
	return f.message
}

// Reset clears the fault.
func (f *faultBoundary) Reset() {
	f.message = ""
}

// Guard runs render, recording any panic it raises. It reports false when
// render did not complete.
func (f *faultBoundary) Guard(render func() string) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			f.message = fmt.Sprint(r)
			f.logger.Error("render failed", zap.String("panic", f.message), zap.Stack("stack"))
			out, ok = "", false
		}
	}()
	return render(), true
}

// renderFault renders the error screen.
func (m Model) renderFault() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(truncate(m.fault.Message(), 60)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("press r to try again"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()))
}
