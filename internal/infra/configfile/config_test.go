package configfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/slope/internal/domain"
)

func TestLoadFile_FullConfig(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("testdata", "slope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.P1 != (domain.Point{X: -2, Y: 3}) || cfg.Defaults.P2 != (domain.Point{X: 4, Y: 3}) {
		t.Fatalf("unexpected points %+v", cfg.Defaults)
	}
	if cfg.Defaults.Step != 0.5 || cfg.Defaults.ShowChart {
		t.Fatalf("unexpected defaults %+v", cfg.Defaults)
	}
	want := domain.ChartConfig{Padding: 1, Samples: 50, WidthIn: 8, HeightIn: 5, Output: "charts/line.png"}
	if cfg.Chart != want {
		t.Fatalf("unexpected chart config %+v", cfg.Chart)
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := t.TempDir()

	// Partial config (only the step)
	content := []byte("slope:\n  defaults:\n    step: 0.25\n")
	if err := os.WriteFile(filepath.Join(root, FileName), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := NewLoader().LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	def := domain.DefaultConfig()
	if cfg.Defaults.Step != 0.25 {
		t.Fatalf("expected step=0.25, got=%v", cfg.Defaults.Step)
	}
	if cfg.Defaults.P1 != def.Defaults.P1 || cfg.Defaults.P2 != def.Defaults.P2 {
		t.Fatalf("expected default points, got %+v", cfg.Defaults)
	}
	if !cfg.Defaults.ShowChart {
		t.Fatalf("expected show_chart default true")
	}
	if cfg.Chart != def.Chart {
		t.Fatalf("expected default chart config, got %+v", cfg.Chart)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("defaults should be returned alongside the error")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("slope:\n  defaults: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFile(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadFile_InvalidFields(t *testing.T) {
	path := filepath.Join("testdata", "invalid_step.yaml")
	_, err := LoadFile(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "slope.defaults.step") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestApply_Validation(t *testing.T) {
	neg := -1.0
	one := 1
	zero := 0.0

	cases := []struct {
		name  string
		mut   func(*yamlConfig)
		field string
	}{
		{"p1 arity", func(y *yamlConfig) { y.Slope.Defaults.P1 = []float64{1} }, "slope.defaults.p1"},
		{"p2 arity", func(y *yamlConfig) { y.Slope.Defaults.P2 = []float64{1, 2, 3} }, "slope.defaults.p2"},
		{"padding", func(y *yamlConfig) { y.Slope.Chart.Padding = &neg }, "slope.chart.padding"},
		{"samples", func(y *yamlConfig) { y.Slope.Chart.Samples = &one }, "slope.chart.samples"},
		{"width", func(y *yamlConfig) { y.Slope.Chart.WidthIn = &zero }, "slope.chart.width_in"},
		{"height", func(y *yamlConfig) { y.Slope.Chart.HeightIn = &neg }, "slope.chart.height_in"},
	}
	for _, c := range cases {
		var y yamlConfig
		c.mut(&y)
		_, err := apply("slope.yaml", domain.DefaultConfig(), y)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) || !strings.Contains(err.Error(), c.field) {
			t.Fatalf("%s: expected invalid %s, got %v", c.name, c.field, err)
		}
	}
}
