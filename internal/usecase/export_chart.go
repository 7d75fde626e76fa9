package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/ports"
)

type ExportChart struct {
	renderer ports.ChartRenderer
	log      *slog.Logger
}

func NewExportChart(r ports.ChartRenderer, log *slog.Logger) *ExportChart {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &ExportChart{renderer: r, log: log}
}

// Execute renders spec to path through the configured renderer.
func (uc *ExportChart) Execute(ctx context.Context, spec domain.ChartSpec, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return &domain.OpError{
			Op:   "usecase.export_chart",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("output path is empty"),
		}
	}
	if uc.renderer == nil {
		return &domain.OpError{
			Op:   "usecase.export_chart",
			Kind: domain.KindExecution,
			Path: path,
			Err:  errors.New("no chart renderer configured"),
		}
	}

	if err := uc.renderer.RenderChart(ctx, spec, path); err != nil {
		uc.log.Error("chart.export.failed", "path", path, "err", err)
		return err
	}
	uc.log.Info("chart.exported", "path", path, "series", spec.SeriesLabel)
	return nil
}
