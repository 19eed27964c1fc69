// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"
	"strings"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/resolve"
	"github.com/gogpu/matgen/target"
)

// Names of the push-constant structure and its instance.
const (
	PushConstantStructName   = "Constants"
	PushConstantInstanceName = "pushConstants"
)

// PushConstants declares list as one structure, members in list order.
// Targets with push_constant blocks get one; others get a struct plus a
// uniform at the given location.
func (g *Generator) PushConstants(out *Source, list []material.PushConstant, location int) *Source {
	if len(list) == 0 {
		return out
	}
	block := g.cfg.SupportsPushConstantBlock()
	if block {
		out.Line("layout(push_constant) uniform %s {", PushConstantStructName)
	} else {
		out.Line("struct %s {", PushConstantStructName)
	}
	out.pushIndent()
	for _, pc := range list {
		checkIdentifier("push constant", pc.Name)
		out.Line("%s %s;", resolve.ConstantTypeName(pc.Type), pc.Name)
	}
	out.popIndent()
	if block {
		return out.Line("} %s;", PushConstantInstanceName)
	}
	out.Line("};")
	return out.Line("LAYOUT_LOCATION(%d) uniform %s %s;", location, PushConstantStructName, PushConstantInstanceName)
}

// SpecializationConstant declares a constant the runtime may override by id.
// Without constant_id support the value goes through a SPIRV_CROSS_CONSTANT_ID_<id>
// macro so a preprocessor-level override keeps working.
func (g *Generator) SpecializationConstant(out *Source, name string, id uint32, value material.ConstantValue) *Source {
	typeName := resolve.ConstantTypeName(value.Type)
	literal := constantLiteral(value)
	if g.cfg.SupportsSpecializationConstants() {
		return out.Line("layout (constant_id = %d) const %s %s = %s;", id, typeName, name, literal)
	}
	macro := fmt.Sprintf("SPIRV_CROSS_CONSTANT_ID_%d", id)
	out.Line("#ifndef %s", macro)
	out.Line("#define %s %s", macro, literal)
	out.Line("#endif")
	return out.Line("const %s %s = %s;", typeName, name, macro)
}

func constantLiteral(v material.ConstantValue) string {
	switch v.Type {
	case material.ConstantInt:
		return fmt.Sprintf("%d", v.Int)
	case material.ConstantFloat:
		return formatFloat(v.Float)
	default:
		if v.Bool {
			return "true"
		}
		return "false"
	}
}

// formatFloat formats a float32 as a GLSL literal.
func formatFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Define writes "#define name" when value is true.
func (g *Generator) Define(out *Source, name string, value bool) *Source {
	if value {
		out.Line("#define %s", name)
	}
	return out
}

// DefineValue writes "#define name value".
func (g *Generator) DefineValue(out *Source, name string, value uint32) *Source {
	return out.Line("#define %s %d", name, value)
}

// DefineString writes "#define name text". An empty text defines name as empty.
func (g *Generator) DefineString(out *Source, name, text string) *Source {
	return out.Line("%s", join("#define", name, text))
}

// IndexedDefine writes "#define <name><index> value".
func (g *Generator) IndexedDefine(out *Source, name string, index, value uint32) *Source {
	return out.Line("#define %s%d %d", name, index, value)
}

// QualityDefine declares the quality levels and the level in effect.
// The default quality follows the shader model.
func (g *Generator) QualityDefine(out *Source, quality material.Quality) *Source {
	out.Line("#define SHADER_QUALITY_LOW    0")
	out.Line("#define SHADER_QUALITY_NORMAL 1")
	out.Line("#define SHADER_QUALITY_HIGH   2")

	if quality == material.QualityDefault {
		quality = material.QualityLow
		if g.cfg.Model == target.ShaderModelDesktop {
			quality = material.QualityHigh
		}
	}
	level := "SHADER_QUALITY_NORMAL"
	switch quality {
	case material.QualityLow:
		level = "SHADER_QUALITY_LOW"
	case material.QualityHigh:
		level = "SHADER_QUALITY_HIGH"
	}
	return g.DefineString(out, "SHADER_QUALITY", level)
}

// MaterialProperty writes MATERIAL_HAS_<PROPERTY> when the material sets it.
func (g *Generator) MaterialProperty(out *Source, property material.Property, isSet bool) *Source {
	return g.Define(out, "MATERIAL_HAS_"+resolve.PropertyConstantName(property), isSet)
}
