package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajsim/internal/projectile"
)

var (
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 2)

	GradientTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	WarningText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	ErrorText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	Focused = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff00ff"))
)

// FormatMetric renders a value at display precision.
func FormatMetric(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// MetricsPanel renders the three flight metrics and any warning in a box.
func MetricsPanel(r *projectile.Result) string {
	rows := []struct {
		label, value, unit string
	}{
		{"max height", FormatMetric(r.MaxHeight), "m"},
		{"range", FormatMetric(r.TotalRange), "m"},
		{"time of flight", FormatMetric(r.TimeOfFlight), "s"},
	}

	var b strings.Builder
	b.WriteString(GradientTitle.Render("trajectory"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(MetricLabel.Render(fmt.Sprintf("%-15s", row.label)))
		b.WriteString(MetricValue.Render(row.value))
		b.WriteString(" " + Subtle.Render(row.unit))
	}
	if r.Warning != "" {
		b.WriteString("\n")
		b.WriteString(WarningText.Render("! " + r.Warning))
	}

	return GlassPanel.Render(b.String())
}

// Separator is a muted horizontal rule.
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
