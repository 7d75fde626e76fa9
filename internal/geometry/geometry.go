// Package geometry derives slope, line equation, classification and distance
// from two points. Every function is pure and total.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/aalvaropc/slope/internal/domain"
)

// Slope returns (y2-y1)/(x2-x1), or a vertical slope when x1 == x2.
func Slope(p1, p2 domain.Point) domain.Slope {
	if p2.X == p1.X {
		return domain.VerticalSlope()
	}
	return domain.DefinedSlope((p2.Y - p1.Y) / (p2.X - p1.X))
}

// LineEquation returns the line with slope m through p1.
func LineEquation(p1 domain.Point, m float64) domain.Line {
	return domain.Line{Slope: m, Intercept: p1.Y - m*p1.X}
}

// Distance is the Euclidean distance between p1 and p2. It stays finite for
// finite points whose squared deltas would overflow.
func Distance(p1, p2 domain.Point) float64 {
	d := planar.Distance(toOrb(p1), toOrb(p2))
	if math.IsInf(d, 0) {
		return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	}
	return d
}

// Classify maps a slope onto exactly one classification.
func Classify(s domain.Slope) domain.Classification {
	m, ok := s.Value()
	switch {
	case !ok:
		return domain.Vertical
	case m > 0:
		return domain.Increasing
	case m < 0:
		return domain.Decreasing
	default:
		return domain.Horizontal
	}
}

func Describe(p1, p2 domain.Point) domain.LineDescriptor {
	m, ok := Slope(p1, p2).Value()
	if !ok {
		return domain.VerticalDescriptor()
	}
	return domain.NewLineDescriptor(LineEquation(p1, m))
}

// Analyze computes everything shown for a pair of points.
// Coincident points are reported as a vertical line at distance 0.
func Analyze(p1, p2 domain.Point) domain.Analysis {
	d := Describe(p1, p2)
	return domain.Analysis{
		P1:             p1,
		P2:             p2,
		Descriptor:     d,
		Classification: Classify(d.Slope()),
		Distance:       Distance(p1, p2),
	}
}

func toOrb(p domain.Point) orb.Point {
	return orb.Point{p.X, p.Y}
}
