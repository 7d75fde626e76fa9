package domain

// Config represents the slope configuration loaded from slope.yaml.
type Config struct {
	Defaults InputDefaults
	Chart    ChartConfig
}

type InputDefaults struct {
	P1        Point
	P2        Point
	Step      float64
	ShowChart bool
}

type ChartConfig struct {
	// Padding extends the drawn line beyond the points, in data units.
	Padding  float64
	Samples  int
	WidthIn  float64
	HeightIn float64
	Output   string
}

// DefaultConfig provides sane defaults if slope.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: InputDefaults{
			P1:        Point{X: 0, Y: 0},
			P2:        Point{X: 1, Y: 1},
			Step:      0.1,
			ShowChart: true,
		},
		Chart: ChartConfig{
			Padding:  2,
			Samples:  100,
			WidthIn:  10,
			HeightIn: 6,
			Output:   "slope.png",
		},
	}
}
