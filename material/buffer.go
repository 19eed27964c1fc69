// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

import "strings"

// BufferTarget selects between a uniform block and a storage block.
type BufferTarget uint8

const (
	TargetUniform BufferTarget = iota
	TargetStorage
)

var bufferTargetNames = []string{"uniform", "storage"}

func (t BufferTarget) String() string { return enumName(bufferTargetNames, t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *BufferTarget) UnmarshalText(text []byte) error {
	v, err := parseEnum[BufferTarget]("buffer target", bufferTargetNames, text)
	if err == nil {
		*t = v
	}
	return err
}

// Alignment is the memory layout rule of a block.
type Alignment uint8

const (
	AlignmentStd140 Alignment = iota
	AlignmentStd430
)

var alignmentNames = []string{"std140", "std430"}

func (a Alignment) String() string { return enumName(alignmentNames, a) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := parseEnum[Alignment]("alignment", alignmentNames, text)
	if err == nil {
		*a = v
	}
	return err
}

// Qualifier is a bitmask of storage block memory qualifiers.
type Qualifier uint8

const (
	QualifierCoherent Qualifier = 1 << iota
	QualifierWriteOnly
	QualifierReadOnly
	QualifierVolatile
	QualifierRestrict
)

var qualifierKeywords = []string{"coherent", "writeonly", "readonly", "volatile", "restrict"}

// Keywords returns the GLSL keywords of the set bits, lowest bit first.
func (q Qualifier) Keywords() []string {
	var out []string
	for i, kw := range qualifierKeywords {
		if q&(1<<i) != 0 {
			out = append(out, kw)
		}
	}
	return out
}

// Field is one member of a buffer layout.
type Field struct {
	Name string
	Type UniformType
	// Precision overrides the block and stage defaults when set.
	Precision Precision
	// IsArray marks arrays; Size 0 with no SizeName is an unsized array.
	IsArray bool
	Size    uint32
	// SizeName sizes the array with a named constant instead of a literal.
	SizeName string
	// StructName names the struct of TypeStruct fields.
	StructName string
}

// BufferLayout is an ordered, named group of fields bound as one resource.
type BufferLayout struct {
	Name       string
	Fields     []Field
	Target     BufferTarget
	Alignment  Alignment
	Qualifiers Qualifier
	// DefaultPrecision applies to fields without their own precision.
	DefaultPrecision Precision
}

// BlockName returns the block type name: Name with an upper-case first letter.
func (b *BufferLayout) BlockName() string {
	if b.Name == "" {
		return ""
	}
	return strings.ToUpper(b.Name[:1]) + b.Name[1:]
}

// InstanceName returns the block instance name: Name with a lower-case first letter.
func (b *BufferLayout) InstanceName() string {
	if b.Name == "" {
		return ""
	}
	return strings.ToLower(b.Name[:1]) + b.Name[1:]
}

// IsEmpty reports whether the layout has no fields.
func (b *BufferLayout) IsEmpty() bool {
	return len(b.Fields) == 0
}

// Field returns the field with the given name.
func (b *BufferLayout) Field(name string) (Field, bool) {
	for _, f := range b.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
