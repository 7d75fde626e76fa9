package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/aalvaropc/slope/internal/domain"
)

const tol = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func pt(x, y float64) domain.Point { return domain.Point{X: x, Y: y} }

func TestSlopeFormula(t *testing.T) {
	cases := []struct {
		p1, p2 domain.Point
		want   float64
	}{
		{pt(0, 0), pt(2, 4), 2},
		{pt(-2, 3), pt(4, 3), 0},
		{pt(0, 0), pt(1, 1), 1},
		{pt(1, 2), pt(3, -2), -2},
		{pt(0.1, 0.2), pt(0.4, 0.8), 2},
	}
	for _, c := range cases {
		m, ok := Slope(c.p1, c.p2).Value()
		if !ok {
			t.Fatalf("Slope(%v, %v): expected defined", c.p1, c.p2)
		}
		if !near(m, c.want) {
			t.Errorf("Slope(%v, %v) = %v, want %v", c.p1, c.p2, m, c.want)
		}
	}
}

func TestSlopeVerticalRegardlessOfY(t *testing.T) {
	for _, ys := range [][2]float64{{5, -3}, {0, 0}, {-1, 100}, {2, 2}} {
		s := Slope(pt(1, ys[0]), pt(1, ys[1]))
		if !s.IsVertical() {
			t.Fatalf("x1 == x2 with y=%v: expected vertical, got %v", ys, s)
		}
	}
}

func TestPointsLieOnLine(t *testing.T) {
	pairs := [][2]domain.Point{
		{pt(0, 0), pt(2, 4)},
		{pt(-2, 3), pt(4, 3)},
		{pt(1.3, -7.1), pt(-4.2, 0.9)},
		{pt(1e3, 1e-3), pt(-1e3, 5)},
	}
	for _, p := range pairs {
		l, ok := Describe(p[0], p[1]).Line()
		if !ok {
			t.Fatalf("Describe(%v): expected defined line", p)
		}
		if !near(l.At(p[0].X), p[0].Y) || !near(l.At(p[1].X), p[1].Y) {
			t.Errorf("points %v not on %s", p, l.Equation())
		}
	}
}

func TestDistance(t *testing.T) {
	a, b := pt(0, 0), pt(3, 4)
	if d := Distance(a, b); d != 5 {
		t.Fatalf("expected 5, got %v", d)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Fatalf("distance not symmetric")
	}
	p := pt(-1.5, 2.25)
	if d := Distance(p, p); d != 0 {
		t.Fatalf("distance(p, p) = %v", d)
	}
}

func TestDistanceLargeCoordinates(t *testing.T) {
	d := Distance(pt(0, 0), pt(1, 1e308))
	if math.IsInf(d, 0) || !near(d, 1e308) {
		t.Fatalf("expected finite distance near 1e308, got %v", d)
	}
	if d := Distance(pt(3e200, 0), pt(0, 4e200)); !near(d, 5e200) {
		t.Fatalf("expected 5e200, got %v", d)
	}
}

func TestClassificationExactlyOne(t *testing.T) {
	pairs := [][2]domain.Point{
		{pt(0, 0), pt(1, 1)},
		{pt(0, 0), pt(1, -1)},
		{pt(0, 2), pt(1, 2)},
		{pt(3, 0), pt(3, 1)},
		{pt(3, 3), pt(3, 3)},
	}
	seen := map[domain.Classification]bool{}
	for _, p := range pairs {
		c := Analyze(p[0], p[1]).Classification
		hits := 0
		for _, k := range domain.Classifications() {
			if c == k {
				hits++
			}
		}
		if hits != 1 {
			t.Fatalf("pair %v: classification %q matched %d kinds", p, c, hits)
		}
		seen[c] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected all four classifications, saw %v", seen)
	}
}

func TestAnalyzeExamples(t *testing.T) {
	cases := []struct {
		p1, p2   domain.Point
		slope    string
		class    domain.Classification
		equation string
		distance string
	}{
		{pt(0, 0), pt(2, 4), "2.0", domain.Increasing, "y = 2.0000x + 0.0000", "4.4721"},
		{pt(1, 5), pt(1, -3), "undefined", domain.Vertical, "", "8.0000"},
		{pt(-2, 3), pt(4, 3), "0.0", domain.Horizontal, "y = 0.0000x + 3.0000", "6.0000"},
	}
	for _, c := range cases {
		a := Analyze(c.p1, c.p2)
		if got := a.Slope().String(); got != c.slope {
			t.Errorf("%v-%v slope = %s, want %s", c.p1, c.p2, got, c.slope)
		}
		if a.Classification != c.class {
			t.Errorf("%v-%v class = %s, want %s", c.p1, c.p2, a.Classification, c.class)
		}
		l, ok := a.Line()
		if c.equation == "" {
			if ok {
				t.Errorf("%v-%v: expected no line", c.p1, c.p2)
			}
		} else if !ok || l.Equation() != c.equation {
			t.Errorf("%v-%v equation = %q, want %q", c.p1, c.p2, l.Equation(), c.equation)
		}
		if got := fmt.Sprintf("%.4f", a.Distance); got != c.distance {
			t.Errorf("%v-%v distance = %s, want %s", c.p1, c.p2, got, c.distance)
		}
	}
}

func TestCoincidentPointsAreVertical(t *testing.T) {
	a := Analyze(pt(2, 2), pt(2, 2))
	if a.Classification != domain.Vertical {
		t.Fatalf("expected vertical, got %s", a.Classification)
	}
	if a.Distance != 0 {
		t.Fatalf("expected distance 0, got %v", a.Distance)
	}
}
