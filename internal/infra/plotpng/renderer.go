// Package plotpng renders a chart spec to an image file with gonum/plot.
package plotpng

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/ports"
	"github.com/aalvaropc/slope/internal/presentation"
)

var (
	pointColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	lineColor  = color.RGBA{R: 30, G: 70, B: 220, A: 255}
	gridColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

type Renderer struct {
	width  vg.Length
	height vg.Length
}

type Option func(*Renderer)

// WithSize sets the image size in inches.
func WithSize(widthIn, heightIn float64) Option {
	return func(r *Renderer) {
		if widthIn > 0 && heightIn > 0 {
			r.width = vg.Length(widthIn) * vg.Inch
			r.height = vg.Length(heightIn) * vg.Inch
		}
	}
}

func New(opts ...Option) *Renderer {
	c := domain.DefaultConfig().Chart
	r := &Renderer{
		width:  vg.Length(c.WidthIn) * vg.Inch,
		height: vg.Length(c.HeightIn) * vg.Inch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// RenderChart writes spec to path. The image format follows the extension
// (png when there is none).
func (r *Renderer) RenderChart(ctx context.Context, spec domain.ChartSpec, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	format, err := formatFor(path)
	if err != nil {
		return &domain.OpError{Op: "plotpng.format", Kind: domain.KindInvalidInput, Path: path, Err: err}
	}

	p, err := r.build(spec)
	if err != nil {
		return &domain.OpError{Op: "plotpng.build", Kind: domain.KindExecution, Path: path, Err: err}
	}

	wt, err := p.WriterTo(r.width, r.height, format)
	if err != nil {
		return &domain.OpError{Op: "plotpng.encode", Kind: domain.KindExecution, Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{Op: "plotpng.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.OpError{Op: "plotpng.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if _, err := wt.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "plotpng.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "plotpng.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "plotpng.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}

func (r *Renderer) build(spec domain.ChartSpec) (*plot.Plot, error) {
	if len(spec.Markers) == 0 {
		return nil, fmt.Errorf("chart has no points")
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	var series plotter.XYs
	switch {
	case len(spec.Line) > 0:
		series = toXYs(spec.Line)
	case spec.VerticalX != nil:
		series = plotter.XYs{
			{X: *spec.VerticalX, Y: spec.YMin},
			{X: *spec.VerticalX, Y: spec.YMax},
		}
	}
	if len(series) > 0 {
		line, err := plotter.NewLine(series)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = lineColor
		p.Add(line)
		p.Legend.Add(spec.SeriesLabel, line)
	}

	pts := make([]domain.Point, len(spec.Markers))
	names := make([]string, len(spec.Markers))
	for i, m := range spec.Markers {
		pts[i] = m.Point
		names[i] = m.Label
	}

	scatter, err := plotter.NewScatter(toXYs(pts))
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add("Points", scatter)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: toXYs(pts), Labels: names})
	if err != nil {
		return nil, err
	}
	labels.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
	p.Add(labels)

	b := presentation.EqualAspect(presentation.Pad(spec.Bounds, 0.05), float64(r.width/r.height))
	p.X.Min, p.X.Max = b.MinX, b.MaxX
	p.Y.Min, p.Y.Max = b.MinY, b.MaxY

	return p, nil
}

func toXYs(pts []domain.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[i].X = p.X
		out[i].Y = p.Y
	}
	return out
}

func formatFor(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("output path is empty")
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "":
		return "png", nil
	case "png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff":
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported image format %q (expected png|jpg|svg|pdf|eps|tif)", ext)
	}
}
