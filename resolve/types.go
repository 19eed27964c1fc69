// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resolve

import (
	"strings"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

// GLSL type names shared by several tables.
const (
	glslTypeFloat = "float"
	glslTypeInt   = "int"
	glslTypeUint  = "uint"
	glslTypeBool  = "bool"
)

var uniformTypeTokens = [...]string{
	material.TypeBool:   glslTypeBool,
	material.TypeBool2:  "bvec2",
	material.TypeBool3:  "bvec3",
	material.TypeBool4:  "bvec4",
	material.TypeFloat:  glslTypeFloat,
	material.TypeFloat2: "vec2",
	material.TypeFloat3: "vec3",
	material.TypeFloat4: "vec4",
	material.TypeInt:    glslTypeInt,
	material.TypeInt2:   "ivec2",
	material.TypeInt3:   "ivec3",
	material.TypeInt4:   "ivec4",
	material.TypeUint:   glslTypeUint,
	material.TypeUint2:  "uvec2",
	material.TypeUint3:  "uvec3",
	material.TypeUint4:  "uvec4",
	material.TypeMat3:   "mat3",
	material.TypeMat4:   "mat4",
}

// TypeName returns the GLSL token of t (e.g. "vec3", "mat4").
// Struct types have no token of their own; use FieldTypeName.
func TypeName(t material.UniformType) string {
	if int(t) >= len(uniformTypeTokens) {
		target.Fail(target.ErrUnsupportedType, "no GLSL type for %s", t)
	}
	return uniformTypeTokens[t]
}

// FieldTypeName returns the declared type of a buffer field.
func FieldTypeName(f material.Field) string {
	if f.Type == material.TypeStruct {
		if f.StructName == "" {
			target.Fail(target.ErrUnsupportedType, "struct field %q has no struct name", f.Name)
		}
		return f.StructName
	}
	return TypeName(f.Type)
}

// OutputTypeName returns the GLSL token of a fragment output type.
func OutputTypeName(t material.OutputType) string {
	if t > material.OutputUint4 {
		target.Fail(target.ErrUnsupportedType, "no GLSL type for output %s", t)
	}
	n := t.Components()
	var scalar, prefix string
	switch {
	case t <= material.OutputFloat4:
		scalar, prefix = glslTypeFloat, "vec"
	case t <= material.OutputInt4:
		scalar, prefix = glslTypeInt, "ivec"
	default:
		scalar, prefix = glslTypeUint, "uvec"
	}
	if n == 1 {
		return scalar
	}
	return prefix + string(rune('0'+n))
}

// ConstantTypeName returns the GLSL token of a constant type.
func ConstantTypeName(t material.ConstantType) string {
	switch t {
	case material.ConstantInt:
		return glslTypeInt
	case material.ConstantFloat:
		return glslTypeFloat
	case material.ConstantBool:
		return glslTypeBool
	}
	target.Fail(target.ErrUnsupportedType, "no GLSL type for constant %s", t)
	return ""
}

// InterpolationQualifier returns the keyword for an interpolation mode, or ""
// when the mode is the default or the dialect has no equivalent.
func InterpolationQualifier(v target.Version, i material.Interpolation) string {
	switch i {
	case material.InterpolationFlat:
		if v.SupportsFlat() {
			return "flat"
		}
		return ""
	case material.InterpolationNoPerspective:
		if v.SupportsNoPerspective() {
			return "noperspective"
		}
		return ""
	default:
		return ""
	}
}

// PropertyConstantName returns the upper-case name of a property (e.g. "BASE_COLOR").
func PropertyConstantName(p material.Property) string {
	return strings.ToUpper(p.String())
}

// SamplerTypeName returns the GLSL sampler token for a (type, format, multisample) triple.
// Triples the config cannot declare panic with target.ErrInvalidSampler.
func SamplerTypeName(cfg target.Config, t material.SamplerType, f material.SamplerFormat, multisample bool) string {
	invalid := func(reason string) string {
		target.Fail(target.ErrInvalidSampler, "%s %s (multisample=%t): %s", t, f, multisample, reason)
		return ""
	}
	if (f == material.FormatInt || f == material.FormatUint) && !cfg.SupportsIntegerSamplers() {
		return invalid("integer samplers need feature level 1")
	}
	if f == material.FormatShadow && cfg.FeatureLevel == target.FeatureLevel0 {
		return invalid("shadow samplers need feature level 1")
	}
	if multisample && f == material.FormatShadow {
		return invalid("multisampled shadow samplers do not exist")
	}

	prefix := samplerPrefix(f)
	shadow := ""
	if f == material.FormatShadow {
		shadow = "Shadow"
	}

	switch t {
	case material.Sampler2D:
		if multisample {
			if !cfg.SupportsMultisampleSamplers() {
				return invalid("multisampled samplers are not available")
			}
			return prefix + "sampler2DMS"
		}
		return prefix + "sampler2D" + shadow
	case material.Sampler2DArray:
		if !cfg.SupportsArrayAnd3DSamplers() {
			return invalid("array samplers need feature level 1")
		}
		if multisample {
			if !cfg.SupportsMultisampleArraySamplers() {
				return invalid("multisampled array samplers are desktop only")
			}
			return prefix + "sampler2DMSArray"
		}
		return prefix + "sampler2DArray" + shadow
	case material.SamplerCubemap:
		if multisample {
			return invalid("cubemaps cannot be multisampled")
		}
		return prefix + "samplerCube" + shadow
	case material.SamplerExternal:
		if f != material.FormatFloat || multisample {
			return invalid("external samplers are float and single-sampled")
		}
		return "samplerExternalOES"
	case material.Sampler3D:
		if !cfg.SupportsArrayAnd3DSamplers() {
			return invalid("3D samplers need feature level 1")
		}
		if multisample || f == material.FormatShadow {
			return invalid("3D samplers cannot be multisampled or shadow")
		}
		return prefix + "sampler3D"
	case material.SamplerCubemapArray:
		if !cfg.SupportsCubemapArrays() {
			return invalid("cubemap arrays are not available")
		}
		if multisample {
			return invalid("cubemap arrays cannot be multisampled")
		}
		return prefix + "samplerCubeArray" + shadow
	}
	return invalid("unknown sampler type")
}

func samplerPrefix(f material.SamplerFormat) string {
	switch f {
	case material.FormatInt:
		return "i"
	case material.FormatUint:
		return "u"
	default:
		return ""
	}
}

// AttributeTypeName returns the GLSL token of a vertex attribute.
func AttributeTypeName(a material.Attribute) string {
	info := a.Info()
	if info.Name == "" {
		target.Fail(target.ErrUnsupportedType, "no vertex attribute in slot %d", a)
	}
	return TypeName(info.Type)
}
