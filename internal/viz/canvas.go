package viz

import (
	"math"
	"strings"
)

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at sub-pixel (x, y); the canvas is Width*2 by Height*4
// dots with y growing downward. Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine is Bresenham between two dots.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Trace draws the polyline through (xs[i], ys[i]) in world coordinates,
// centred, with one scale for both axes and y pointing up.
func (c *Canvas) Trace(xs, ys []float64) {
	n := min(len(xs), len(ys))
	if n == 0 {
		return
	}

	xlo, xhi := finiteRange(xs[:n])
	ylo, yhi := finiteRange(ys[:n])
	pw, ph := float64(c.Width*2-1), float64(c.Height*4-1)

	scale := math.Inf(1)
	if xhi > xlo {
		scale = pw / (xhi - xlo)
	}
	if yhi > ylo {
		scale = math.Min(scale, ph/(yhi-ylo))
	}
	if math.IsInf(scale, 1) {
		scale = 0
	}

	cx, cy := (xlo+xhi)/2, (ylo+yhi)/2
	dot := func(i int) (int, int) {
		x := pw/2 + (xs[i]-cx)*scale
		y := ph/2 - (ys[i]-cy)*scale
		return int(math.Round(x)), int(math.Round(y))
	}

	px, py := dot(0)
	c.Set(px, py)
	for i := 1; i < n; i++ {
		x, y := dot(i)
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

// Lit counts the set dots.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for bits := r - brailleBlank; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
