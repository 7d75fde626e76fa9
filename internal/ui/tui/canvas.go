package tui

import (
	"strings"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/presentation"
)

func renderCanvas(spec domain.ChartSpec, cols, rows int, t Theme) string {
	c := presentation.RenderCanvas(spec, cols, rows)
	return strings.Join(c.Styled(t.canvasStyle), "\n")
}
