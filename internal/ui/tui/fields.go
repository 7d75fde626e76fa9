package tui

import (
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/aalvaropc/slope/internal/domain"
)

const (
	fieldX1 = iota
	fieldY1
	fieldX2
	fieldY2
	fieldCount
)

// numberField keeps the last valid value while the text is being edited.
type numberField struct {
	label   string
	input   textinput.Model
	value   float64
	invalid bool
}

func newNumberField(label string, v float64) numberField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = 14
	ti.SetValue(domain.FormatCoord(v))
	ti.CursorEnd()
	return numberField{label: label, input: ti, value: v}
}

// sync reparses the text; unparseable text leaves value untouched.
func (f *numberField) sync() bool {
	v, err := domain.ParseCoord(f.input.Value())
	if err != nil {
		f.invalid = true
		return false
	}
	f.invalid = false
	changed := v != f.value
	f.value = v
	return changed
}

// nudge moves the value by delta and rewrites the text.
func (f *numberField) nudge(delta float64) {
	f.value = roundStep(f.value + delta)
	f.invalid = false
	f.input.SetValue(domain.FormatCoord(f.value))
	f.input.CursorEnd()
}

// roundStep drops float noise so 0.1+0.2 shows as 0.3. Magnitudes where
// v*scale would lose precision are returned untouched.
func roundStep(v float64) float64 {
	const scale = 1e9
	if math.Abs(v) >= 1e6 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

func formatStep(step float64) string {
	return strconv.FormatFloat(step, 'f', -1, 64)
}
