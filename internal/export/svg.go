package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/trajsim/internal/projectile"
	"github.com/san-kum/trajsim/internal/viz"
)

const (
	svgBackground = "#0a0a0a"
	svgGround     = "#444466"
	DefaultStroke = "#00ffff"
)

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.Pixels()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, svgBackground, DefaultStroke)

	dotRadius := scale * 0.4

	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectoryToSVG draws the trajectory as a single path with the ground line
// at y=0. It returns "" for fewer than two points.
func TrajectoryToSVG(points []projectile.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	// Ground is always in frame.
	minX, maxX := points[0].X, points[0].X
	minY, maxY := 0.0, 0.0
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	sx := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	sy := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-width="1"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, svgBackground,
		sy(0), width, sy(0), svgGround,
		strokeColor)

	for i, p := range points {
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", sx(p.X), sy(p.Y))
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", sx(p.X), sy(p.Y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteDotSVG plots the trajectory on a cols x rows braille canvas and writes
// the lit dots as SVG circles.
func WriteDotSVG(w io.Writer, r *projectile.Result, cols, rows int, scale float64) error {
	if len(r.Points) == 0 || cols <= 0 || rows <= 0 {
		return fmt.Errorf("nothing to plot: %d point(s) on a %dx%d canvas", len(r.Points), cols, rows)
	}
	_, err := io.WriteString(w, CanvasToSVG(viz.PlotTrajectory(r.Points, cols, rows), scale))
	return err
}

// WriteSVG writes the trajectory as an SVG document.
func WriteSVG(w io.Writer, r *projectile.Result, width, height int) error {
	doc := TrajectoryToSVG(r.Points, width, height, DefaultStroke)
	if doc == "" {
		return fmt.Errorf("trajectory has %d point(s), need at least 2 to draw", len(r.Points))
	}
	_, err := io.WriteString(w, doc)
	return err
}
