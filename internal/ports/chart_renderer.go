package ports

import (
	"context"

	"github.com/aalvaropc/slope/internal/domain"
)

// ChartRenderer writes a chart image for spec to path.
type ChartRenderer interface {
	RenderChart(ctx context.Context, spec domain.ChartSpec, path string) error
}
