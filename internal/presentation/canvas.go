package presentation

import (
	"math"
	"strings"

	"github.com/aalvaropc/slope/internal/domain"
)

// CellKind tells a styler what occupies a canvas cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellAxis
	CellLine
	CellMarker
	CellLabel
)

const markerGlyph = '●'

// Canvas is a chart rasterised onto terminal cells. Each cell holds a
// 2x4 braille dot matrix, so one dot is roughly square on a typical terminal.
type Canvas struct {
	Cols, Rows int
	Bounds     domain.Bounds

	axis  []uint8
	line  []uint8
	glyph []rune
	kind  []CellKind
}

// RenderCanvas draws spec onto a cols x rows canvas with equal axis scaling.
func RenderCanvas(spec domain.ChartSpec, cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	c := &Canvas{
		Cols:  cols,
		Rows:  rows,
		axis:  make([]uint8, cols*rows),
		line:  make([]uint8, cols*rows),
		glyph: make([]rune, cols*rows),
		kind:  make([]CellKind, cols*rows),
	}
	aspect := float64(cols*2) / float64(rows*4)
	c.Bounds = EqualAspect(Pad(spec.Bounds, 0.05), aspect)

	c.drawAxes()

	if spec.VerticalX != nil {
		x0, y0 := c.toDots(*spec.VerticalX, spec.YMin)
		x1, y1 := c.toDots(*spec.VerticalX, spec.YMax)
		c.drawLine(c.line, x0, y0, x1, y1)
	}
	for i := 1; i < len(spec.Line); i++ {
		x0, y0 := c.toDots(spec.Line[i-1].X, spec.Line[i-1].Y)
		x1, y1 := c.toDots(spec.Line[i].X, spec.Line[i].Y)
		c.drawLine(c.line, x0, y0, x1, y1)
	}

	var visible []domain.Marker
	for _, m := range spec.Markers {
		if c.Bounds.Contains(m.Point) {
			visible = append(visible, m)
		}
	}
	for _, m := range visible {
		col, row := c.toCell(m.Point)
		c.put(col, row, markerGlyph, CellMarker)
	}
	for _, m := range visible {
		col, row := c.toCell(m.Point)
		c.placeLabel(col, row, m.Label)
	}
	return c
}

// Lines returns the canvas as plain text rows.
func (c *Canvas) Lines() []string {
	return c.Styled(nil)
}

// Styled renders each run of same-kind cells through style (nil keeps it plain).
func (c *Canvas) Styled(style func(CellKind, string) string) []string {
	out := make([]string, c.Rows)
	for row := 0; row < c.Rows; row++ {
		var b strings.Builder
		var run strings.Builder
		runKind := CellEmpty
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style != nil {
				b.WriteString(style(runKind, run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for col := 0; col < c.Cols; col++ {
			r, k := c.cell(col, row)
			if k != runKind {
				flush()
				runKind = k
			}
			run.WriteRune(r)
		}
		flush()
		out[row] = b.String()
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func (c *Canvas) cell(col, row int) (rune, CellKind) {
	i := row*c.Cols + col
	if c.glyph[i] != 0 {
		return c.glyph[i], c.kind[i]
	}
	if c.line[i] != 0 {
		return rune(0x2800 + int(c.line[i]|c.axis[i])), CellLine
	}
	if c.axis[i] != 0 {
		return rune(0x2800 + int(c.axis[i])), CellAxis
	}
	return ' ', CellEmpty
}

func (c *Canvas) toDots(x, y float64) (int, int) {
	w := float64(c.Cols*2 - 1)
	h := float64(c.Rows*4 - 1)
	nx := (x - c.Bounds.MinX) / c.Bounds.Width()
	ny := (c.Bounds.MaxY - y) / c.Bounds.Height()
	return int(math.Round(nx * w)), int(math.Round(ny * h))
}

func (c *Canvas) toCell(p domain.Point) (int, int) {
	dx, dy := c.toDots(p.X, p.Y)
	return dx / 2, dy / 4
}

func (c *Canvas) drawAxes() {
	if c.Bounds.MinY <= 0 && c.Bounds.MaxY >= 0 {
		_, y := c.toDots(0, 0)
		for x := 0; x < c.Cols*2; x += 2 {
			c.setDot(c.axis, x, y)
		}
	}
	if c.Bounds.MinX <= 0 && c.Bounds.MaxX >= 0 {
		x, _ := c.toDots(0, 0)
		for y := 0; y < c.Rows*4; y += 2 {
			c.setDot(c.axis, x, y)
		}
	}
}

// drawLine uses Bresenham on the dot grid.
func (c *Canvas) drawLine(layer []uint8, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setDot(layer, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) setDot(layer []uint8, x, y int) {
	if x < 0 || y < 0 || x >= c.Cols*2 || y >= c.Rows*4 {
		return
	}
	var bit uint8
	if x%2 == 0 {
		bit = [4]uint8{0x01, 0x02, 0x04, 0x40}[y%4]
	} else {
		bit = [4]uint8{0x08, 0x10, 0x20, 0x80}[y%4]
	}
	layer[(y/4)*c.Cols+x/2] |= bit
}

func (c *Canvas) put(col, row int, r rune, k CellKind) {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return
	}
	i := row*c.Cols + col
	c.glyph[i] = r
	c.kind[i] = k
}

// placeLabel writes text right of the marker, or left of it when it would
// overflow, trying the marker row first and then the rows around it.
func (c *Canvas) placeLabel(col, row int, text string) {
	runes := []rune(text)
	n := len(runes)
	if n+1 > c.Cols {
		return
	}

	start := col + 1
	if start+n > c.Cols {
		start = col - n
	}
	if start < 0 {
		start = 0
	}

	for _, r := range []int{row, row - 1, row + 1} {
		if r < 0 || r >= c.Rows || !c.free(start, r, n) {
			continue
		}
		for i, ch := range runes {
			c.put(start+i, r, ch, CellLabel)
		}
		return
	}
}

func (c *Canvas) free(start, row, n int) bool {
	for i := start; i < start+n; i++ {
		if c.glyph[row*c.Cols+i] != 0 {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
