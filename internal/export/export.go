package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/trajsim/internal/projectile"
)

const (
	SVGWidth  = 800
	SVGHeight = 450

	// Braille plot size in character cells for the svg-dots format.
	DotColumns = 100
	DotRows    = 28
	DotScale   = 4.0
)

type ExportData struct {
	Parameters projectile.Parameters `json:"parameters"`
	Metrics    projectile.Metrics    `json:"metrics"`
	Landed     bool                  `json:"landed"`
	Warning    string                `json:"warning,omitempty"`
	Steps      int                   `json:"steps"`
	Points     []projectile.Point    `json:"points"`
}

// WriteJSON writes the parameters and result as an indented JSON document.
func WriteJSON(w io.Writer, p projectile.Parameters, r *projectile.Result) error {
	data := ExportData{
		Parameters: p,
		Metrics:    r.Metrics,
		Landed:     r.Landed,
		Warning:    r.Warning,
		Steps:      r.Steps,
		Points:     r.Points,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one x,y row per trajectory point.
func WriteCSV(w io.Writer, r *projectile.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, pt := range r.Points {
		row := []string{
			strconv.FormatFloat(pt.X, 'f', 6, 64),
			strconv.FormatFloat(pt.Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Write dispatches on format: csv, json, svg or svg-dots.
func Write(w io.Writer, format string, p projectile.Parameters, r *projectile.Result) error {
	switch format {
	case "csv":
		return WriteCSV(w, r)
	case "json":
		return WriteJSON(w, p, r)
	case "svg":
		return WriteSVG(w, r, SVGWidth, SVGHeight)
	case "svg-dots":
		return WriteDotSVG(w, r, DotColumns, DotRows, DotScale)
	default:
		return fmt.Errorf("unknown export format: %q", format)
	}
}

// ToFile creates path and writes the result to it in the given format.
func ToFile(path, format string, p projectile.Parameters, r *projectile.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(file, format, p, r)
}
