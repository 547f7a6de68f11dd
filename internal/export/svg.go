package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

var (
	ErrEmptyFigure  = errors.New("export: figure has no data")
	ErrSeriesLength = errors.New("export: series length differs from x")
)

var defaultColors = []string{"#ff00ff", "#00ffff", "#ffff00", "#00ff88"}

// Figure is a set of line series over a shared x axis, with optional
// labelled vertical markers (high-symmetry points on a band plot).
type Figure struct {
	Width, Height int
	X             []float64
	Series        [][]float64
	Colors        []string
	Marks         []float64
	MarkLabels    []string
}

func (f *Figure) check() error {
	if len(f.X) < 2 || len(f.Series) == 0 {
		return ErrEmptyFigure
	}
	for i, s := range f.Series {
		if len(s) != len(f.X) {
			return fmt.Errorf("%w: series %d has %d points, x has %d", ErrSeriesLength, i, len(s), len(f.X))
		}
	}
	return nil
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// WriteSVG renders the figure. Non-finite points break the line instead of
// stretching the axes.
func (f *Figure) WriteSVG(w io.Writer) error {
	if err := f.check(); err != nil {
		return err
	}
	width, height := f.Width, f.Height
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 500
	}

	minX, maxX := bounds(f.X)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range f.Series {
		lo, hi := bounds(s)
		minY, maxY = math.Min(minY, lo), math.Max(maxY, hi)
	}
	if math.IsInf(minY, 1) {
		return ErrEmptyFigure
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	px := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	py := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, m := range f.Marks {
		x := px(m)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#444466" stroke-width="1"/>
`, x, x, height))
		if i < len(f.MarkLabels) {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" fill="#cccccc" font-size="14" text-anchor="middle">%s</text>
`, x, height-4, f.MarkLabels[i]))
		}
	}

	colors := f.Colors
	if len(colors) == 0 {
		colors = defaultColors
	}
	for i, s := range f.Series {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="`, colors[i%len(colors)]))
		pen := false
		for j, y := range s {
			if math.IsInf(y, 0) || math.IsNaN(y) {
				pen = false
				continue
			}
			cmd := " L"
			if !pen {
				cmd = " M"
			}
			sb.WriteString(fmt.Sprintf("%s%.1f,%.1f", cmd, px(f.X[j]), py(y)))
			pen = true
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// PathLabels spells out high-symmetry labels for marks, Γ for G.
func PathLabels(labels string) []string {
	out := make([]string, 0, len(labels))
	for _, r := range labels {
		if r == 'G' {
			out = append(out, "Γ")
			continue
		}
		out = append(out, string(r))
	}
	return out
}
