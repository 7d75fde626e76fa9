package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/presentation"
	"github.com/aalvaropc/slope/internal/usecase"
)

const (
	leftWidth     = 46
	defaultWidth  = 120
	defaultHeight = 36
)

type model struct {
	theme Theme
	deps  Deps

	fields    [fieldCount]numberField
	focus     int
	step      float64
	showChart bool

	result usecase.Result

	width  int
	height int

	exporting bool
	toast     string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Analyzer == nil {
		deps.Analyzer = usecase.NewAnalyze(
			usecase.WithChartOptions(presentation.ChartOptionsFrom(deps.Config.Chart)),
			usecase.WithLogger(deps.Logger),
		)
	}

	d := deps.Config.Defaults
	step := d.Step
	if step <= 0 {
		step = domain.DefaultConfig().Defaults.Step
	}

	m := model{
		theme:     DefaultTheme(),
		deps:      deps,
		step:      step,
		showChart: d.ShowChart,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.fields[fieldX1] = newNumberField("X1", d.P1.X)
	m.fields[fieldY1] = newNumberField("Y1", d.P1.Y)
	m.fields[fieldX2] = newNumberField("X2", d.P2.X)
	m.fields[fieldY2] = newNumberField("Y2", d.P2.Y)
	m.fields[fieldX1].input.Focus()

	m.recompute()
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case chartExportedMsg:
		m.exporting = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		} else {
			m.toast = "Chart saved to " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "tab", "enter":
			return m, m.setFocus((m.focus + 1) % fieldCount)

		case "shift+tab":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

		case "up":
			m.nudge(m.step)
			return m, nil

		case "down":
			m.nudge(-m.step)
			return m, nil

		case "pgup":
			m.nudge(10 * m.step)
			return m, nil

		case "pgdown":
			m.nudge(-10 * m.step)
			return m, nil

		case "ctrl+t":
			m.showChart = !m.showChart
			m.recompute()
			return m, nil

		case "ctrl+s":
			return m.exportChart()
		}
	}

	var cmd tea.Cmd
	f := &m.fields[m.focus]
	f.input, cmd = f.input.Update(msg)
	if f.sync() {
		m.recompute()
	}
	return m, cmd
}

func (m *model) setFocus(i int) tea.Cmd {
	m.fields[m.focus].input.Blur()
	m.focus = i
	return m.fields[m.focus].input.Focus()
}

func (m *model) nudge(delta float64) {
	m.fields[m.focus].nudge(delta)
	m.recompute()
}

func (m *model) points() (domain.Point, domain.Point) {
	return domain.Point{X: m.fields[fieldX1].value, Y: m.fields[fieldY1].value},
		domain.Point{X: m.fields[fieldX2].value, Y: m.fields[fieldY2].value}
}

// recompute rebuilds the whole result from the current field values.
func (m *model) recompute() {
	p1, p2 := m.points()
	m.result = m.deps.Analyzer.Execute(usecase.Input{P1: p1, P2: p2, ShowChart: m.showChart})
}

func (m model) exportChart() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}

	spec := m.result.Chart
	if spec == nil {
		// Export works with the chart hidden too.
		p1, p2 := m.points()
		spec = m.deps.Analyzer.Execute(usecase.Input{P1: p1, P2: p2, ShowChart: true}).Chart
	}
	if spec == nil {
		m.toast = "Nothing to export"
		return m, nil
	}

	path := m.deps.Config.Chart.Output
	if path == "" {
		path = domain.DefaultConfig().Chart.Output
	}

	m.exporting = true
	m.toast = "Exporting chart…"
	return m, cmdExportChart(m.deps, *spec, path)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(0, 1)
	header := m.theme.Title.Render("Slope between two points") + "\n" +
		m.theme.Subtitle.Render("Slope, line equation, classification and distance") + "\n"
	if m.deps.Debug {
		header += m.theme.Help.Render("debug logging to .slope/logs/slope.log") + "\n"
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Card.Width(leftWidth).Render(m.renderInputs()),
		m.theme.Card.Width(leftWidth).Render(m.renderResults()),
	)

	right := m.theme.Card.Render(m.renderChartPanel(lipgloss.Height(left)))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	help := m.theme.Help.Render("tab/shift+tab field • ↑/↓ ±step • pgup/pgdn ±10 steps • ctrl+t chart • ctrl+s export • q quit")
	footer := m.renderGuide() + "\n\n" + help
	if m.toast != "" {
		footer += "\n" + clampString(m.toast, m.width-4)
	}

	return wrap.Render(header + "\n" + body + "\n" + footer)
}

func (m model) renderChartPanel(leftHeight int) string {
	// card border (2) + padding (4 wide, 2 tall)
	cols := m.width - leftWidth - 4 - 6 - 2
	rows := leftHeight - 2 - 2 - 2
	if cols < 20 {
		cols = 20
	}
	if rows < 8 {
		rows = 8
	}

	if !m.showChart || m.result.Chart == nil {
		return fmt.Sprintf("%s\n\n%s",
			m.theme.Title.Render("Chart"),
			m.theme.Help.Render("Press ctrl+t to show the chart."),
		)
	}

	spec := *m.result.Chart
	canvas := renderCanvas(spec, cols, rows, m.theme)
	return m.theme.Title.Render(spec.Title) + "  " + m.theme.Help.Render(spec.SeriesLabel) + "\n" + canvas
}
