package domain

// ChartSpec is a backend-neutral description of the slope chart.
// Exactly one of Line (non-empty) or VerticalX (non-nil) is set.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string

	Markers []Marker

	Line      []Point
	VerticalX *float64
	YMin      float64
	YMax      float64

	SeriesLabel string
	Bounds      Bounds
}

// Marker is an annotated point.
type Marker struct {
	Point Point
	Label string
}

// Bounds is an axis-aligned data-space rectangle.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Extend grows b to include p.
func (b Bounds) Extend(p Point) Bounds {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}
