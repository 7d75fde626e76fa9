package configfile

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/ports"
)

// Loader reads slope.yaml from a directory.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.ConfigLoader = (*Loader)(nil)

func (l *Loader) LoadConfig(root string) (domain.Config, error) {
	return LoadConfig(root)
}

// LoadConfig loads slope.yaml from root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName))
}

// LoadFile loads an explicit config file and applies defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return apply(path, cfg, y)
}

type yamlConfig struct {
	Slope struct {
		Defaults struct {
			P1        []float64 `yaml:"p1"`
			P2        []float64 `yaml:"p2"`
			Step      *float64  `yaml:"step"`
			ShowChart *bool     `yaml:"show_chart"`
		} `yaml:"defaults"`

		Chart struct {
			Padding  *float64 `yaml:"padding"`
			Samples  *int     `yaml:"samples"`
			WidthIn  *float64 `yaml:"width_in"`
			HeightIn *float64 `yaml:"height_in"`
			Output   string   `yaml:"output"`
		} `yaml:"chart"`
	} `yaml:"slope"`
}
