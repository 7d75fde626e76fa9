package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/infra/configfile"
	"github.com/aalvaropc/slope/internal/infra/plotpng"
	"github.com/aalvaropc/slope/internal/usecase"
)

// loadConfig returns the effective config and the directory logs go under.
// An explicit path must exist; a discovered slope.yaml is optional.
func loadConfig(configPath string) (domain.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if p := strings.TrimSpace(configPath); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return domain.DefaultConfig(), wd, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := configfile.LoadFile(abs)
		if err != nil {
			return cfg, wd, err
		}
		return cfg, filepath.Dir(abs), nil
	}

	root, err := configfile.NewFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), wd, nil
		}
		return domain.DefaultConfig(), wd, err
	}

	cfg, err := configfile.LoadConfig(root)
	return cfg, root, err
}

func newExporter(cfg domain.Config, log *slog.Logger) *usecase.ExportChart {
	r := plotpng.New(plotpng.WithSize(cfg.Chart.WidthIn, cfg.Chart.HeightIn))
	return usecase.NewExportChart(r, log)
}
