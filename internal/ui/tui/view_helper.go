package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/slope/internal/presentation"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func (m model) renderInputs() string {
	var b strings.Builder

	for i := range m.fields {
		if i == 0 {
			b.WriteString(m.theme.Label.Render("Point 1 (P1)"))
			b.WriteString("\n")
		}
		if i == 2 {
			b.WriteString("\n")
			b.WriteString(m.theme.Label.Render("Point 2 (P2)"))
			b.WriteString("\n")
		}

		f := m.fields[i]
		line := fmt.Sprintf("%-3s %s", f.label+":", f.input.View())
		if f.invalid {
			line += " " + m.theme.Invalid.Render("not a number")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	box := "[ ]"
	if m.showChart {
		box = "[x]"
	}
	b.WriteString("\n")
	b.WriteString(box + " Show chart")
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(fmt.Sprintf("step %s", formatStep(m.step))))

	return b.String()
}

func (m model) renderResults() string {
	r := m.result.Report
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Results"))
	b.WriteString("\n\n")

	fields := r.Fields()
	for _, f := range fields[:4] {
		b.WriteString(m.theme.Label.Render(f.Label + ": "))
		b.WriteString(f.Value)
		b.WriteString("\n")
	}

	b.WriteString(m.renderNotice(r.Notice))
	b.WriteString("\n")

	last := fields[4]
	b.WriteString(m.theme.Label.Render(last.Label + ": "))
	b.WriteString(last.Value)
	b.WriteString("\n\n")

	b.WriteString(m.theme.Title.Render("Formula"))
	b.WriteString("\n")
	b.WriteString(r.Formula)

	return b.String()
}

func (m model) renderNotice(msg presentation.Message) string {
	style, ok := m.theme.Tones[msg.Tone]
	if !ok {
		return msg.Text
	}
	return style.Render(msg.Text)
}

func (m model) renderGuide() string {
	var b strings.Builder
	for _, g := range presentation.Guide() {
		b.WriteString("• ")
		b.WriteString(g)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
