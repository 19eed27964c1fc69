// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

// UniformType is the abstract type of a buffer field, attribute or uniform.
type UniformType uint8

const (
	TypeBool UniformType = iota
	TypeBool2
	TypeBool3
	TypeBool4
	TypeFloat
	TypeFloat2
	TypeFloat3
	TypeFloat4
	TypeInt
	TypeInt2
	TypeInt3
	TypeInt4
	TypeUint
	TypeUint2
	TypeUint3
	TypeUint4
	TypeMat3
	TypeMat4
	// TypeStruct fields name their struct through Field.StructName.
	TypeStruct
)

var uniformTypeNames = []string{
	"bool", "bool2", "bool3", "bool4",
	"float", "float2", "float3", "float4",
	"int", "int2", "int3", "int4",
	"uint", "uint2", "uint3", "uint4",
	"mat3", "mat4", "struct",
}

func (t UniformType) String() string { return enumName(uniformTypeNames, t) }

// IsBool reports whether t is a boolean scalar or vector.
func (t UniformType) IsBool() bool { return t <= TypeBool4 }

// MarshalText implements encoding.TextMarshaler.
func (t UniformType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *UniformType) UnmarshalText(text []byte) error {
	v, err := parseEnum[UniformType]("type", uniformTypeNames, text)
	if err == nil {
		*t = v
	}
	return err
}

// OutputType is the type of a fragment output.
type OutputType uint8

const (
	OutputFloat OutputType = iota
	OutputFloat2
	OutputFloat3
	OutputFloat4
	OutputInt
	OutputInt2
	OutputInt3
	OutputInt4
	OutputUint
	OutputUint2
	OutputUint3
	OutputUint4
)

var outputTypeNames = []string{
	"float", "float2", "float3", "float4",
	"int", "int2", "int3", "int4",
	"uint", "uint2", "uint3", "uint4",
}

func (t OutputType) String() string { return enumName(outputTypeNames, t) }

// Components returns the number of components of t.
func (t OutputType) Components() int { return int(t)%4 + 1 }

// MarshalText implements encoding.TextMarshaler.
func (t OutputType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *OutputType) UnmarshalText(text []byte) error {
	v, err := parseEnum[OutputType]("output type", outputTypeNames, text)
	if err == nil {
		*t = v
	}
	return err
}

// ConstantType is the type of a push constant or specialization constant.
type ConstantType uint8

const (
	ConstantInt ConstantType = iota
	ConstantFloat
	ConstantBool
)

var constantTypeNames = []string{"int", "float", "bool"}

func (t ConstantType) String() string { return enumName(constantTypeNames, t) }

// MarshalText implements encoding.TextMarshaler.
func (t ConstantType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ConstantType) UnmarshalText(text []byte) error {
	v, err := parseEnum[ConstantType]("constant type", constantTypeNames, text)
	if err == nil {
		*t = v
	}
	return err
}

// Interpolation is how a varying is interpolated across a primitive.
type Interpolation uint8

const (
	InterpolationSmooth Interpolation = iota
	InterpolationFlat
	InterpolationNoPerspective
)

var interpolationNames = []string{"smooth", "flat", "no_perspective"}

func (i Interpolation) String() string { return enumName(interpolationNames, i) }

// MarshalText implements encoding.TextMarshaler.
func (i Interpolation) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interpolation) UnmarshalText(text []byte) error {
	v, err := parseEnum[Interpolation]("interpolation", interpolationNames, text)
	if err == nil {
		*i = v
	}
	return err
}

// Shading is the shading model of a surface material.
type Shading uint8

const (
	ShadingUnlit Shading = iota
	ShadingLit
	ShadingSubsurface
	ShadingCloth
	ShadingSpecularGlossiness
)

var shadingNames = []string{"unlit", "lit", "subsurface", "cloth", "specular_glossiness"}

func (s Shading) String() string { return enumName(shadingNames, s) }

// Define returns the preprocessor symbol announcing this shading model.
func (s Shading) Define() string {
	switch s {
	case ShadingUnlit:
		return "SHADING_MODEL_UNLIT"
	case ShadingSubsurface:
		return "SHADING_MODEL_SUBSURFACE"
	case ShadingCloth:
		return "SHADING_MODEL_CLOTH"
	case ShadingSpecularGlossiness:
		return "SHADING_MODEL_SPECULAR_GLOSSINESS"
	default:
		return "SHADING_MODEL_LIT"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Shading) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shading) UnmarshalText(text []byte) error {
	v, err := parseEnum[Shading]("shading", shadingNames, text)
	if err == nil {
		*s = v
	}
	return err
}

// Domain is what a material renders.
type Domain uint8

const (
	DomainSurface Domain = iota
	DomainPostProcess
	DomainCompute
)

var domainNames = []string{"surface", "post_process", "compute"}

func (d Domain) String() string { return enumName(domainNames, d) }

// MarshalText implements encoding.TextMarshaler.
func (d Domain) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Domain) UnmarshalText(text []byte) error {
	v, err := parseEnum[Domain]("domain", domainNames, text)
	if err == nil {
		*d = v
	}
	return err
}

// VertexDomain is the space vertex positions are expressed in.
type VertexDomain uint8

const (
	VertexDomainObject VertexDomain = iota
	VertexDomainWorld
	VertexDomainView
	VertexDomainDevice
)

var vertexDomainNames = []string{"object", "world", "view", "device"}

func (d VertexDomain) String() string { return enumName(vertexDomainNames, d) }

// MarshalText implements encoding.TextMarshaler.
func (d VertexDomain) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *VertexDomain) UnmarshalText(text []byte) error {
	v, err := parseEnum[VertexDomain]("vertex domain", vertexDomainNames, text)
	if err == nil {
		*d = v
	}
	return err
}

// BlendingMode is how the material output is combined with the target.
type BlendingMode uint8

const (
	BlendingOpaque BlendingMode = iota
	BlendingTransparent
	BlendingAdd
	BlendingMasked
	BlendingFade
	BlendingMultiply
	BlendingScreen
)

var blendingNames = []string{"opaque", "transparent", "add", "masked", "fade", "multiply", "screen"}

func (b BlendingMode) String() string { return enumName(blendingNames, b) }

// MarshalText implements encoding.TextMarshaler.
func (b BlendingMode) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BlendingMode) UnmarshalText(text []byte) error {
	v, err := parseEnum[BlendingMode]("blending", blendingNames, text)
	if err == nil {
		*b = v
	}
	return err
}

// Quality selects a shader quality level.
type Quality uint8

const (
	// QualityDefault picks low on mobile and high on desktop.
	QualityDefault Quality = iota
	QualityLow
	QualityNormal
	QualityHigh
)

var qualityNames = []string{"default", "low", "normal", "high"}

func (q Quality) String() string { return enumName(qualityNames, q) }

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(text []byte) error {
	v, err := parseEnum[Quality]("quality", qualityNames, text)
	if err == nil {
		*q = v
	}
	return err
}
