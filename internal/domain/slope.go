package domain

import "encoding/json"

// Slope is either a defined rate of change or vertical (undefined).
// Build it with DefinedSlope or VerticalSlope; the zero value is vertical.
type Slope struct {
	value   float64
	defined bool
}

func DefinedSlope(m float64) Slope {
	return Slope{value: m, defined: true}
}

func VerticalSlope() Slope {
	return Slope{}
}

// Value returns the slope and true, or 0 and false when the line is vertical.
func (s Slope) Value() (float64, bool) {
	if !s.defined {
		return 0, false
	}
	return s.value, true
}

func (s Slope) IsVertical() bool { return !s.defined }

func (s Slope) String() string {
	if !s.defined {
		return "undefined"
	}
	return FormatCoord(s.value)
}

// MarshalJSON encodes a vertical slope as null.
func (s Slope) MarshalJSON() ([]byte, error) {
	if !s.defined {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}
