package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/usecase"
)

type Analyzer interface {
	Execute(in usecase.Input) usecase.Result
}

type ChartExporter interface {
	Execute(ctx context.Context, spec domain.ChartSpec, path string) error
}

type Deps struct {
	Analyzer Analyzer
	Exporter ChartExporter
	Config   domain.Config

	Logger *slog.Logger
	Debug  bool
}
