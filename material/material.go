// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

// MaxCustomVariables is the number of interpolant slots reserved for materials.
const MaxCustomVariables = 4

// CustomVariable is a user interpolant passed from the vertex to the fragment stage.
type CustomVariable struct {
	Name          string
	Type          UniformType // defaults to float4
	Precision     Precision
	Interpolation Interpolation
}

// VariableQualifier is the storage qualifier of a fragment output.
type VariableQualifier uint8

const (
	QualifierOut VariableQualifier = iota
)

// Output is a fragment shader output.
type Output struct {
	Name      string
	Qualifier VariableQualifier
	Precision Precision
	Type      OutputType
	// Location is the color attachment index.
	Location uint8
}

// PushConstant is one member of the push-constant structure.
type PushConstant struct {
	Name string
	Type ConstantType
}

// ConstantValue is a typed default value of a specialization constant.
type ConstantValue struct {
	Type  ConstantType
	Int   int32
	Float float32
	Bool  bool
}

// IntValue returns an int constant value.
func IntValue(v int32) ConstantValue { return ConstantValue{Type: ConstantInt, Int: v} }

// FloatValue returns a float constant value.
func FloatValue(v float32) ConstantValue { return ConstantValue{Type: ConstantFloat, Float: v} }

// BoolValue returns a bool constant value.
func BoolValue(v bool) ConstantValue { return ConstantValue{Type: ConstantBool, Bool: v} }

// SpecConstant is a user specialization constant.
type SpecConstant struct {
	Name  string
	Value ConstantValue
}

// Subpass is an input attachment read by a post-process material.
type Subpass struct {
	Name            string
	AttachmentIndex uint8
	Binding         uint8
	Format          SamplerFormat
	Precision       Precision
}

// IsValid reports whether the subpass is declared.
func (s Subpass) IsValid() bool { return s.Name != "" }

// Material is the complete descriptor of one material.
type Material struct {
	Name          string
	Domain        Domain
	Shading       Shading
	Interpolation Interpolation
	VertexDomain  VertexDomain
	Blending      BlendingMode
	Quality       Quality

	Attributes    AttributeBitset
	Variables     []CustomVariable
	Outputs       []Output
	PushConstants []PushConstant
	Properties    PropertySet

	Uniforms  BufferLayout
	Samplers  SamplerBlock
	Buffers   []BufferLayout
	Constants []SpecConstant
	Subpass   Subpass

	// GroupSize is the compute workgroup size.
	GroupSize [3]uint32

	HasCustomSurfaceShading bool
	HasShadowMultiplier     bool
	FlipUV                  bool
	DoubleSided             bool

	// VertexCode and FragmentCode are hand-authored GLSL appended verbatim.
	// ComputeCode is used by the compute domain.
	VertexCode   string
	FragmentCode string
	ComputeCode  string
}

// HasExternalSamplers reports whether the material samples external images.
func (m *Material) HasExternalSamplers() bool {
	return m.Samplers.HasExternalSamplers()
}

// IsLit reports whether the material runs a lighting model.
func (m *Material) IsLit() bool {
	return m.Shading != ShadingUnlit
}
