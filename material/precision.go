// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

// Precision is a GLSL precision qualifier.
type Precision uint8

const (
	// PrecisionDefault means "not specified": the next level of the default chain decides.
	PrecisionDefault Precision = iota
	PrecisionLow
	PrecisionMedium
	PrecisionHigh
	// PrecisionNone marks values that never carry a qualifier (booleans).
	PrecisionNone
)

var precisionNames = []string{"default", "low", "medium", "high", "none"}

func (p Precision) String() string { return enumName(precisionNames, p) }

// MarshalText implements encoding.TextMarshaler.
func (p Precision) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Precision) UnmarshalText(text []byte) error {
	v, err := parseEnum[Precision]("precision", precisionNames, text)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
