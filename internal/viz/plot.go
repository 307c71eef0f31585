package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajsim/internal/projectile"
)

// PlotTrajectory draws points on a w x h character canvas, y up, with the
// ground line at y=0. Both axes are scaled independently to fill the canvas.
func PlotTrajectory(points []projectile.Point, w, h int) *Canvas {
	c := NewCanvas(w, h)
	if len(points) == 0 || w <= 0 || h <= 0 {
		return c
	}

	pw, ph := c.Pixels()

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

	px := func(x float64) int { return int(math.Round((x - minX) / rangeX * float64(pw-1))) }
	py := func(y float64) int { return ph - 1 - int(math.Round((y-minY)/rangeY*float64(ph-1))) }

	ground := py(0)
	c.DrawLine(0, ground, pw-1, ground)

	prevX, prevY := px(points[0].X), py(points[0].Y)
	c.Set(prevX, prevY)
	for _, p := range points[1:] {
		x, y := px(p.X), py(p.Y)
		c.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}

	return c
}

// LineChart renders height against sample index with asciigraph. Samples are
// evenly spaced in x except the interpolated landing point.
func LineChart(points []projectile.Point, width, height int) string {
	if len(points) < 2 {
		return ""
	}

	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.Y
	}

	caption := fmt.Sprintf("height (m) over %.2f m of range", points[len(points)-1].X)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
