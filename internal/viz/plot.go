package viz

import (
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

type PlotOptions struct {
	Height, Width int
	Caption       string
	Theme         Theme
}

func (o PlotOptions) options(series int) []asciigraph.Option {
	opts := []asciigraph.Option{
		asciigraph.Height(o.Height),
		asciigraph.Width(o.Width),
		asciigraph.Precision(3),
	}
	if o.Caption != "" {
		opts = append(opts, asciigraph.Caption(o.Caption))
	}
	if n := len(o.Theme.Series); n > 0 {
		colors := make([]asciigraph.AnsiColor, series)
		for i := range colors {
			colors[i] = o.Theme.Series[i%n]
		}
		opts = append(opts, asciigraph.SeriesColors(colors...))
	}
	return opts
}

// PlotBands draws every band on one set of axes. Flat bands are drawn too.
func PlotBands(bands [][]float64, o PlotOptions) string {
	if len(bands) == 0 || len(bands[0]) == 0 {
		return ""
	}
	data := make([][]float64, len(bands))
	for i, b := range bands {
		data[i] = clip(b)
	}
	if len(data) == 1 {
		return asciigraph.Plot(data[0], o.options(1)...)
	}
	return asciigraph.PlotMany(data, o.options(len(data))...)
}

// PlotPath is PlotBands with the high-symmetry labels set under the x axis.
func PlotPath(bands [][]float64, labels string, ticks []float64, o PlotOptions) string {
	plot := PlotBands(bands, o)
	if plot == "" {
		return ""
	}
	return plot + "\n" + PathAxis(labels, ticks, o.Width, axisOffset(plot))
}

// PlotCurve draws y against evenly spaced x. Divergent points are clipped to
// the largest finite value so a single +Inf does not flatten the plot.
func PlotCurve(y []float64, o PlotOptions) string {
	if len(y) == 0 {
		return ""
	}
	return asciigraph.Plot(clip(y), o.options(1)...)
}

// PathAxis labels the high-symmetry corners under a plot of the given width,
// placing each label at its share of the total arc length. Offset is the
// width of the plot's y-axis gutter.
func PathAxis(labels string, ticks []float64, width, offset int) string {
	if len(ticks) == 0 || width < 1 {
		return ""
	}
	total := ticks[len(ticks)-1]

	line := []rune(strings.Repeat(" ", offset+width+1))
	for i, r := range []rune(labels) {
		if i >= len(ticks) {
			break
		}
		col := 0
		if total > 0 {
			col = int(math.Round(ticks[i] / total * float64(width-1)))
		}
		if r == 'G' {
			r = 'Γ'
		}
		line[offset+col] = r
	}
	return strings.TrimRight(string(line), " ")
}

// axisOffset finds the first data column of an asciigraph plot.
func axisOffset(plot string) int {
	first, _, _ := strings.Cut(plot, "\n")
	for i, r := range []rune(first) {
		if r == '┤' || r == '┼' {
			return i + 1
		}
	}
	return 0
}

func clip(values []float64) []float64 {
	_, hi := finiteRange(values)
	out := make([]float64, len(values))
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = 0
		case math.IsInf(v, 1):
			out[i] = hi
		case math.IsInf(v, -1):
			out[i] = -hi
		default:
			out[i] = v
		}
	}
	return out
}

func finiteRange(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if isNonFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}

func isNonFinite(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v)
}
