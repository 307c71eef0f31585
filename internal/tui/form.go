// Package tui is the interactive terminal front end: a three-field launch
// form with a live trajectory plot.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trajsim/internal/form"
	"github.com/san-kum/trajsim/internal/projectile"
	"github.com/san-kum/trajsim/internal/viz"
)

const (
	defaultPlotWidth  = 60
	defaultPlotHeight = 12
	chromeRows        = 16
)

type field struct {
	key, label, unit string
}

var fields = []field{
	{form.FieldVelocity, "velocity", "m/s"},
	{form.FieldAngle, "angle", "deg"},
	{form.FieldHeight, "height", "m"},
}

type model struct {
	base          projectile.Parameters
	values        map[string]string
	cursor        int
	result        *projectile.Result
	errMsg        string
	width, height int
}

// NewModel prefills the form from base and computes its trajectory.
func NewModel(base projectile.Parameters) model {
	m := model{
		base: base,
		values: map[string]string{
			form.FieldVelocity: formatInput(base.InitialVelocity),
			form.FieldAngle:    formatInput(base.LaunchAngleDeg),
			form.FieldHeight:   formatInput(base.InitialHeight),
		},
	}
	m.calculate()
	return m
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	key := fields[m.cursor].key

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.cursor = (m.cursor + 1) % len(fields)
	case "shift+tab", "up":
		m.cursor = (m.cursor + len(fields) - 1) % len(fields)
	case "enter":
		m.calculate()
	case "backspace":
		if buf := m.values[key]; len(buf) > 0 {
			m.values[key] = buf[:len(buf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 && strings.ContainsAny(s, "0123456789.-+eE") {
			m.values[key] += s
		}
	}
	return m, nil
}

// calculate runs the form through validation and the simulator. A rejected
// form clears the previous result.
func (m *model) calculate() {
	p, err := form.Parse(m.values, m.base)
	if err != nil {
		m.errMsg = err.Error()
		m.result = nil
		return
	}
	m.errMsg = ""
	m.result = projectile.Simulate(p)
}

func (m model) plotSize() (int, int) {
	w, h := defaultPlotWidth, defaultPlotHeight
	if m.width > 0 {
		w = max(m.width-8, 10)
	}
	if m.height > chromeRows+4 {
		h = m.height - chromeRows
	}
	return w, h
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.GradientTitle.Render("PROJECTILE TRAJECTORY") + "\n")
	b.WriteString("  " + viz.Separator(30) + "\n\n")

	for i, f := range fields {
		val := m.values[f.key]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				viz.Focused.Render("▸"),
				viz.Focused.Render(fmt.Sprintf("%-10s", f.label)),
				viz.MetricValue.Render(val+"_"),
				viz.Subtle.Render(f.unit)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				viz.MetricLabel.Render(fmt.Sprintf("%-10s", f.label)),
				val,
				viz.Subtle.Render(f.unit)))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n  " + viz.ErrorText.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n")
	if m.result != nil && len(m.result.Points) > 1 {
		w, h := m.plotSize()
		for _, line := range viz.PlotTrajectory(m.result.Points, w, h).Lines() {
			b.WriteString("  " + viz.MetricValue.Render(line) + "\n")
		}
	} else {
		b.WriteString("  " + viz.Subtle.Render("Enter parameters and press enter to calculate the trajectory.") + "\n")
	}

	result := m.result
	if result == nil {
		result = &projectile.Result{}
	}
	b.WriteString("\n" + viz.MetricsPanel(result) + "\n")

	b.WriteString("\n  " + viz.KeyHint.Render("tab/↑↓ field  enter calculate  backspace edit  esc quit") + "\n")
	return b.String()
}

// RunInteractive starts the form in the alternate screen.
func RunInteractive(base projectile.Parameters) error {
	p := tea.NewProgram(NewModel(base), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
