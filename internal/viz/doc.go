// Package viz renders trajectories and metrics for the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per cell
//   - [PlotTrajectory]: scales a trajectory onto a Canvas with y up
//   - [LineChart]: asciigraph height chart
//   - [MetricsPanel]: lipgloss box with the flight metrics at 2 decimals
//
// Formatting to display precision happens here only; the simulation keeps
// full precision values.
package viz
