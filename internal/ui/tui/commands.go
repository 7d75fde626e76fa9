package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/slope/internal/domain"
)

const exportTimeout = 30 * time.Second

func cmdExportChart(deps Deps, spec domain.ChartSpec, path string) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		if deps.Exporter == nil {
			return chartExportedMsg{path: path, err: errors.New("Exporter is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		// The exporter logs the outcome.
		log.Debug("chart.export.start", "path", path, "series", spec.SeriesLabel)
		err := deps.Exporter.Execute(ctx, spec, path)
		return chartExportedMsg{path: path, err: err}
	}
}
