package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/slope/internal/domain"
)

// Tone hints how a message should be styled.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
)

// Formula is the slope formula shown next to the results.
const Formula = "m = (y2 - y1) / (x2 - x1)"

type Message struct {
	Tone Tone
	Text string
}

// Report is the textual summary of an analysis, already formatted.
type Report struct {
	P1       string
	P2       string
	Slope    string
	Equation string
	Notice   Message
	Distance string
	Formula  string
	Guide    []string
}

// Field is one labelled line of the report.
type Field struct {
	Label string
	Value string
}

func BuildReport(a domain.Analysis) Report {
	r := Report{
		P1:       a.P1.String(),
		P2:       a.P2.String(),
		Notice:   ClassificationMessage(a.Classification),
		Distance: fmt.Sprintf("%.4f", a.Distance),
		Formula:  Formula,
		Guide:    Guide(),
	}

	if l, ok := a.Line(); ok {
		r.Slope = fmt.Sprintf("%.4f", l.Slope)
		r.Equation = l.Equation()
	} else {
		r.Slope = "undefined"
		r.Equation = "x = " + domain.FormatCoord(a.P1.X)
	}
	return r
}

// Fields lists the report lines in display order, without the notice.
func (r Report) Fields() []Field {
	return []Field{
		{"Point 1", r.P1},
		{"Point 2", r.P2},
		{"Slope (m)", r.Slope},
		{"Line equation", r.Equation},
		{"Distance between points", r.Distance},
	}
}

func ClassificationMessage(c domain.Classification) Message {
	switch c {
	case domain.Increasing:
		return Message{Tone: ToneSuccess, Text: "Positive slope: the line is increasing"}
	case domain.Decreasing:
		return Message{Tone: ToneError, Text: "Negative slope: the line is decreasing"}
	case domain.Horizontal:
		return Message{Tone: ToneInfo, Text: "Zero slope: the line is horizontal"}
	default:
		return Message{Tone: ToneWarning, Text: "Undefined slope: the line is vertical (x1 = x2)"}
	}
}

func Guide() []string {
	return []string{
		"Positive slope: the line rises from left to right",
		"Negative slope: the line falls from left to right",
		"Zero slope: the line is horizontal",
		"Undefined slope: the line is vertical (division by zero)",
	}
}

type TextOptions struct {
	// Guide appends the reference bullets.
	Guide bool
}

// WriteText prints the report as aligned plain text.
func WriteText(w io.Writer, r Report, opts TextOptions) error {
	var b strings.Builder

	fields := r.Fields()
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}

	for _, f := range fields[:4] {
		fmt.Fprintf(&b, "%-*s  %s\n", width+1, f.Label+":", f.Value)
	}
	fmt.Fprintf(&b, "%-*s  %s\n", width+1, "Classification:", r.Notice.Text)
	last := fields[4]
	fmt.Fprintf(&b, "%-*s  %s\n", width+1, last.Label+":", last.Value)
	fmt.Fprintf(&b, "%-*s  %s\n", width+1, "Formula:", r.Formula)

	if opts.Guide {
		b.WriteString("\n")
		for _, g := range r.Guide {
			b.WriteString("  - ")
			b.WriteString(g)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
