package usecase

import (
	"testing"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/presentation"
)

func TestAnalyze_WithChart(t *testing.T) {
	uc := NewAnalyze()
	res := uc.Execute(Input{
		P1:        domain.Point{X: 0, Y: 0},
		P2:        domain.Point{X: 2, Y: 4},
		ShowChart: true,
	})

	if res.Analysis.Classification != domain.Increasing {
		t.Fatalf("expected increasing, got %s", res.Analysis.Classification)
	}
	if res.Report.Equation != "y = 2.0000x + 0.0000" {
		t.Fatalf("unexpected equation %q", res.Report.Equation)
	}
	if res.Chart == nil || len(res.Chart.Line) != 100 {
		t.Fatalf("expected a sampled chart, got %+v", res.Chart)
	}
}

func TestAnalyze_WithoutChart(t *testing.T) {
	res := NewAnalyze().Execute(Input{
		P1: domain.Point{X: 1, Y: 5},
		P2: domain.Point{X: 1, Y: -3},
	})
	if res.Chart != nil {
		t.Fatalf("chart should be skipped when not requested")
	}
	if !res.Analysis.Slope().IsVertical() {
		t.Fatalf("expected vertical slope")
	}
	if res.Report.Distance != "8.0000" {
		t.Fatalf("unexpected distance %q", res.Report.Distance)
	}
}

func TestAnalyze_ChartOptions(t *testing.T) {
	uc := NewAnalyze(WithChartOptions(presentation.ChartOptions{Padding: 1, Samples: 5}), WithLogger(nil))
	res := uc.Execute(Input{
		P1:        domain.Point{X: 0, Y: 0},
		P2:        domain.Point{X: 1, Y: 1},
		ShowChart: true,
	})
	if len(res.Chart.Line) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(res.Chart.Line))
	}
	if res.Chart.Line[0].X != -1 || res.Chart.Line[4].X != 2 {
		t.Fatalf("expected padding of 1, got %v..%v", res.Chart.Line[0].X, res.Chart.Line[4].X)
	}
}
