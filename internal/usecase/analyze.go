package usecase

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/geometry"
	"github.com/aalvaropc/slope/internal/presentation"
)

// Input is one interaction: two points and whether the chart is wanted.
type Input struct {
	P1        domain.Point
	P2        domain.Point
	ShowChart bool
}

// Result is recomputed from scratch for every Input.
type Result struct {
	Analysis domain.Analysis
	Report   presentation.Report
	Chart    *domain.ChartSpec
}

type Analyze struct {
	chart presentation.ChartOptions
	log   *slog.Logger
}

type AnalyzeOption func(*Analyze)

func WithChartOptions(o presentation.ChartOptions) AnalyzeOption {
	return func(uc *Analyze) { uc.chart = o }
}

func WithLogger(l *slog.Logger) AnalyzeOption {
	return func(uc *Analyze) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewAnalyze(opts ...AnalyzeOption) *Analyze {
	uc := &Analyze{
		chart: presentation.DefaultChartOptions(),
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute never fails: a vertical line is a regular outcome.
func (uc *Analyze) Execute(in Input) Result {
	a := geometry.Analyze(in.P1, in.P2)

	res := Result{
		Analysis: a,
		Report:   presentation.BuildReport(a),
	}
	if in.ShowChart {
		spec := presentation.BuildChart(a, uc.chart)
		res.Chart = &spec
	}

	uc.log.Debug("analysis.computed",
		"p1", in.P1.String(),
		"p2", in.P2.String(),
		"slope", a.Slope().String(),
		"classification", string(a.Classification),
		"distance", a.Distance,
		"chart", in.ShowChart,
	)
	return res
}
