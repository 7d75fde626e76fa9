package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/slope/internal/presentation"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Invalid  lipgloss.Style

	Axis   lipgloss.Style
	Line   lipgloss.Style
	Marker lipgloss.Style
	Text   lipgloss.Style

	Tones map[presentation.Tone]lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Label:   lipgloss.NewStyle().Bold(true),
		Invalid: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		Axis:   lipgloss.NewStyle().Faint(true),
		Line:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		Tones: map[presentation.Tone]lipgloss.Style{
			presentation.ToneSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			presentation.ToneError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			presentation.ToneInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			presentation.ToneWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		},
	}
}

// canvasStyle colours chart cells by what they hold.
func (t Theme) canvasStyle(k presentation.CellKind, s string) string {
	switch k {
	case presentation.CellAxis:
		return t.Axis.Render(s)
	case presentation.CellLine:
		return t.Line.Render(s)
	case presentation.CellMarker:
		return t.Marker.Render(s)
	case presentation.CellLabel:
		return t.Text.Render(s)
	default:
		return s
	}
}
