package domain

import (
	"fmt"
	"math"
)

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Equation renders the line as "y = 2.0000x + 1.0000" or "y = 2.0000x - 1.0000".
func (l Line) Equation() string {
	b := l.Intercept
	if b == 0 {
		b = 0
	}
	if b >= 0 {
		return fmt.Sprintf("y = %.4fx + %.4f", l.Slope, b)
	}
	return fmt.Sprintf("y = %.4fx - %.4f", l.Slope, math.Abs(b))
}

// LineDescriptor is everything derived from a pair of points about the line
// through them. The intercept only exists when the slope is defined.
type LineDescriptor struct {
	slope     Slope
	intercept float64
}

// NewLineDescriptor binds a defined line; use VerticalDescriptor otherwise.
func NewLineDescriptor(l Line) LineDescriptor {
	return LineDescriptor{slope: DefinedSlope(l.Slope), intercept: l.Intercept}
}

func VerticalDescriptor() LineDescriptor {
	return LineDescriptor{slope: VerticalSlope()}
}

func (d LineDescriptor) Slope() Slope { return d.slope }

func (d LineDescriptor) Line() (Line, bool) {
	m, ok := d.slope.Value()
	if !ok {
		return Line{}, false
	}
	return Line{Slope: m, Intercept: d.intercept}, true
}
