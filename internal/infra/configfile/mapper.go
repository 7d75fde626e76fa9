package configfile

import (
	"fmt"
	"math"
	"strings"

	"github.com/aalvaropc/slope/internal/domain"
)

// apply layers parsed values on top of cfg, validating each one.
func apply(path string, cfg domain.Config, y yamlConfig) (domain.Config, error) {
	d := y.Slope.Defaults
	if d.P1 != nil {
		p, err := mapPoint(d.P1)
		if err != nil {
			return cfg, invalidField(path, "slope.defaults.p1", err.Error())
		}
		cfg.Defaults.P1 = p
	}
	if d.P2 != nil {
		p, err := mapPoint(d.P2)
		if err != nil {
			return cfg, invalidField(path, "slope.defaults.p2", err.Error())
		}
		cfg.Defaults.P2 = p
	}
	if d.Step != nil {
		if !(*d.Step > 0) || math.IsInf(*d.Step, 0) {
			return cfg, invalidField(path, "slope.defaults.step", "step must be a positive number")
		}
		cfg.Defaults.Step = *d.Step
	}
	if d.ShowChart != nil {
		cfg.Defaults.ShowChart = *d.ShowChart
	}

	c := y.Slope.Chart
	if c.Padding != nil {
		if *c.Padding < 0 || math.IsNaN(*c.Padding) || math.IsInf(*c.Padding, 0) {
			return cfg, invalidField(path, "slope.chart.padding", "padding must be zero or positive")
		}
		cfg.Chart.Padding = *c.Padding
	}
	if c.Samples != nil {
		if *c.Samples < 2 {
			return cfg, invalidField(path, "slope.chart.samples", "at least 2 samples are required")
		}
		cfg.Chart.Samples = *c.Samples
	}
	if c.WidthIn != nil {
		if !(*c.WidthIn > 0) {
			return cfg, invalidField(path, "slope.chart.width_in", "width must be positive")
		}
		cfg.Chart.WidthIn = *c.WidthIn
	}
	if c.HeightIn != nil {
		if !(*c.HeightIn > 0) {
			return cfg, invalidField(path, "slope.chart.height_in", "height must be positive")
		}
		cfg.Chart.HeightIn = *c.HeightIn
	}
	if strings.TrimSpace(c.Output) != "" {
		cfg.Chart.Output = strings.TrimSpace(c.Output)
	}

	return cfg, nil
}

func mapPoint(in []float64) (domain.Point, error) {
	if len(in) != 2 {
		return domain.Point{}, fmt.Errorf("expected [x, y], got %d values", len(in))
	}
	for _, v := range in {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.Point{}, fmt.Errorf("coordinates must be finite")
		}
	}
	return domain.Point{X: in[0], Y: in[1]}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "configfile.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
