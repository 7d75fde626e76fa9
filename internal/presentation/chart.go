package presentation

import (
	"fmt"
	"math"

	"github.com/aalvaropc/slope/internal/domain"
)

const (
	ChartTitle     = "Slope between two points"
	verticalLegend = "Vertical line (undefined slope)"
)

type ChartOptions struct {
	// Padding extends the line past the points, in data units.
	Padding float64
	Samples int
}

func DefaultChartOptions() ChartOptions {
	c := domain.DefaultConfig().Chart
	return ChartOptions{Padding: c.Padding, Samples: c.Samples}
}

func ChartOptionsFrom(cfg domain.ChartConfig) ChartOptions {
	o := DefaultChartOptions()
	if cfg.Padding >= 0 {
		o.Padding = cfg.Padding
	}
	if cfg.Samples >= 2 {
		o.Samples = cfg.Samples
	}
	return o
}

// BuildChart describes the chart for a: both points, and either the line
// sampled over the padded x-range or a vertical line over the padded y-range.
func BuildChart(a domain.Analysis, opts ChartOptions) domain.ChartSpec {
	if opts.Samples < 2 {
		opts.Samples = 2
	}

	spec := domain.ChartSpec{
		Title:  ChartTitle,
		XLabel: "X",
		YLabel: "Y",
		Markers: []domain.Marker{
			{Point: a.P1, Label: "P1" + a.P1.String()},
			{Point: a.P2, Label: "P2" + a.P2.String()},
		},
	}

	if l, ok := a.Line(); ok {
		xMin := math.Min(a.P1.X, a.P2.X) - opts.Padding
		xMax := math.Max(a.P1.X, a.P2.X) + opts.Padding
		spec.Line = make([]domain.Point, opts.Samples)
		for i, x := range linspace(xMin, xMax, opts.Samples) {
			spec.Line[i] = domain.Point{X: x, Y: l.At(x)}
		}
		spec.SeriesLabel = fmt.Sprintf("Line (m = %.2f)", l.Slope)
	} else {
		x := a.P1.X
		spec.VerticalX = &x
		spec.YMin = math.Min(a.P1.Y, a.P2.Y) - opts.Padding
		spec.YMax = math.Max(a.P1.Y, a.P2.Y) + opts.Padding
		spec.SeriesLabel = verticalLegend
	}

	spec.Bounds = chartBounds(spec)
	return spec
}

func chartBounds(spec domain.ChartSpec) domain.Bounds {
	first := spec.Markers[0].Point
	b := domain.Bounds{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for _, m := range spec.Markers {
		b = b.Extend(m.Point)
	}
	for _, p := range spec.Line {
		b = b.Extend(p)
	}
	if spec.VerticalX != nil {
		b = b.Extend(domain.Point{X: *spec.VerticalX, Y: spec.YMin})
		b = b.Extend(domain.Point{X: *spec.VerticalX, Y: spec.YMax})
	}
	return b
}

// EqualAspect widens b so that width/height equals aspect, keeping it
// centred. A degenerate box grows by one unit in each direction first.
func EqualAspect(b domain.Bounds, aspect float64) domain.Bounds {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return b
	}
	if b.Width() == 0 && b.Height() == 0 {
		b = domain.Bounds{MinX: b.MinX - 1, MaxX: b.MaxX + 1, MinY: b.MinY - 1, MaxY: b.MaxY + 1}
	}

	w, h := b.Width(), b.Height()
	if w < h*aspect {
		cx := (b.MinX + b.MaxX) / 2
		half := h * aspect / 2
		b.MinX, b.MaxX = cx-half, cx+half
	} else {
		cy := (b.MinY + b.MaxY) / 2
		half := w / aspect / 2
		b.MinY, b.MaxY = cy-half, cy+half
	}
	return b
}

// Pad grows b by frac of its size on every side.
func Pad(b domain.Bounds, frac float64) domain.Bounds {
	dx := b.Width() * frac
	dy := b.Height() * frac
	return domain.Bounds{MinX: b.MinX - dx, MaxX: b.MaxX + dx, MinY: b.MinY - dy, MaxY: b.MaxY + dy}
}

func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}
