package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a pair of real-valued coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", FormatCoord(p.X), FormatCoord(p.Y))
}

// FormatCoord renders v in shortest round-trip form, keeping a trailing ".0"
// on integral values so 2 reads as "2.0". Very large and very small
// magnitudes use exponent form. ParseCoord(FormatCoord(v)) == v for finite v.
func FormatCoord(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if math.IsNaN(v) {
		return "nan"
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	if v != 0 {
		// Exponent form outside [1e-4, 1e16), e.g. 1e-05 and 1e+30.
		e := strconv.FormatFloat(v, 'e', -1, 64)
		exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return e
		}
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// ParsePoint parses "x,y" (spaces and surrounding parentheses allowed).
func ParsePoint(s string) (Point, error) {
	in := strings.TrimSpace(s)
	in = strings.TrimPrefix(in, "(")
	in = strings.TrimSuffix(in, ")")

	parts := strings.Split(in, ",")
	if len(parts) != 2 {
		return Point{}, InvalidInput("domain.parse_point", fmt.Errorf("%q: expected \"x,y\": %w", s, ErrInvalidInput))
	}

	x, err := ParseCoord(parts[0])
	if err != nil {
		return Point{}, InvalidInput("domain.parse_point", fmt.Errorf("x of %q: %w", s, err))
	}
	y, err := ParseCoord(parts[1])
	if err != nil {
		return Point{}, InvalidInput("domain.parse_point", fmt.Errorf("y of %q: %w", s, err))
	}
	return Point{X: x, Y: y}, nil
}

// ParseCoord parses a single finite coordinate.
func ParseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %w", ErrInvalidInput)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("not a finite number: %w", ErrInvalidInput)
	}
	return v, nil
}
