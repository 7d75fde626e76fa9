package domain

// Analysis is the full result for one pair of points.
type Analysis struct {
	P1             Point
	P2             Point
	Descriptor     LineDescriptor
	Classification Classification
	Distance       float64
}

func (a Analysis) Slope() Slope { return a.Descriptor.Slope() }

func (a Analysis) Line() (Line, bool) { return a.Descriptor.Line() }
