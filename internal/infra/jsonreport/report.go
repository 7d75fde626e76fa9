package jsonreport

import (
	"encoding/json"
	"io"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/presentation"
)

// Document is the JSON shape of one analysis. Slope and intercept are null
// for a vertical line.
type Document struct {
	P1             domain.Point          `json:"p1"`
	P2             domain.Point          `json:"p2"`
	Slope          domain.Slope          `json:"slope"`
	Intercept      *float64              `json:"intercept"`
	Equation       string                `json:"equation"`
	Classification domain.Classification `json:"classification"`
	Message        string                `json:"message"`
	Distance       float64               `json:"distance"`
	Formula        string                `json:"formula"`
	Chart          string                `json:"chart,omitempty"`
}

func Build(a domain.Analysis, r presentation.Report) Document {
	doc := Document{
		P1:             a.P1,
		P2:             a.P2,
		Slope:          a.Slope(),
		Equation:       r.Equation,
		Classification: a.Classification,
		Message:        r.Notice.Text,
		Distance:       a.Distance,
		Formula:        r.Formula,
	}
	if l, ok := a.Line(); ok {
		b := l.Intercept
		doc.Intercept = &b
	}
	return doc
}

func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
