// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/resolve"
	"github.com/gogpu/matgen/target"
)

// CommonVariable declares custom interpolant index. The vertex stage also
// gets VARIABLE_CUSTOM<index> defines naming the variable.
func (g *Generator) CommonVariable(out *Source, stage target.Stage, v material.CustomVariable, index int) *Source {
	if v.Name == "" || stage == target.StageCompute {
		return out
	}
	checkIdentifier("variable", v.Name)

	precision := resolve.PrecisionQualifier(v.Precision)
	interp := resolve.InterpolationQualifier(g.cfg.Version(), v.Interpolation)
	declaration := join(interp, "VARYING", precision, resolve.TypeName(v.Type), "variable_"+v.Name)

	if stage == target.StageVertex {
		out.Line("#define VARIABLE_CUSTOM%d %s", index, v.Name)
		out.Line("#define VARIABLE_CUSTOM_AT%d variable_%s", index, v.Name)
	}
	return out.Line("LAYOUT_LOCATION(%d) %s;", index, declaration)
}

// Output declares a fragment output. Metal and feature level 0 (gl_FragData)
// write four components to every color attachment, so outputs are widened to
// 4 components there and FRAG_OUTPUT_SWIZZLE selects the material's components.
func (g *Generator) Output(out *Source, stage target.Stage, o material.Output) *Source {
	if o.Name == "" || stage != target.StageFragment {
		return out
	}
	checkIdentifier("output", o.Name)

	declared := o.Type
	if g.cfg.API == target.APIMetal || g.cfg.FeatureLevel == target.FeatureLevel0 {
		declared = o.Type - material.OutputType(o.Type.Components()-1) + 3
	}
	swizzle := ""
	if declared != o.Type {
		swizzle = ".xyzw"[:o.Type.Components()+1]
	}
	precision := resolve.PrecisionQualifier(o.Precision)

	idx := uint32(o.Location)
	g.DefineString(out, fmt.Sprintf("FRAG_OUTPUT%d", idx), o.Name)
	g.DefineString(out, fmt.Sprintf("FRAG_OUTPUT_MATERIAL_TYPE%d", idx), resolve.OutputTypeName(o.Type))
	g.DefineString(out, fmt.Sprintf("FRAG_OUTPUT_PRECISION%d", idx), precision)
	g.DefineString(out, fmt.Sprintf("FRAG_OUTPUT_TYPE%d", idx), resolve.OutputTypeName(declared))
	g.DefineString(out, fmt.Sprintf("FRAG_OUTPUT_SWIZZLE%d", idx), swizzle)

	if g.cfg.FeatureLevel == target.FeatureLevel0 {
		return out.Line("#define FRAG_OUTPUT_AT%d gl_FragData[%d]", idx, idx)
	}
	out.Line("#define FRAG_OUTPUT_AT%d output_%s", idx, o.Name)
	return out.Line("layout(location = %d) %s;", idx, join("out", precision, resolve.OutputTypeName(declared), "output_"+o.Name))
}

// SurfaceShaderInputs declares the vertex attributes and interpolants of a
// surface material. Push constants follow the attributes at location
// material.MaxVertexAttributes.
func (g *Generator) SurfaceShaderInputs(out *Source, stage target.Stage, attributes material.AttributeBitset, interpolation material.Interpolation, pushConstants []material.PushConstant) *Source {
	g.DefineString(out, "SHADING_INTERPOLATION", resolve.InterpolationQualifier(g.cfg.Version(), interpolation))
	out.Separator()
	attributes.ForEach(func(a material.Attribute) {
		g.Define(out, a.Define(), true)
	})

	if stage == target.StageVertex {
		out.Separator()
		attributes.ForEach(func(a material.Attribute) {
			out.Line("LAYOUT_LOCATION(%d) ATTRIBUTE %s %s;", a, resolve.AttributeTypeName(a), a.Info().Name)
		})
		out.Separator()
		g.PushConstants(out, pushConstants, material.MaxVertexAttributes)
	}
	out.Separator()
	return out.Raw(chunk("surface_inputs.glsl"))
}

// PostProcessInputs declares the interpolants of a post-process material.
func (g *Generator) PostProcessInputs(out *Source, stage target.Stage) *Source {
	if stage == target.StageCompute {
		return out
	}
	return out.Raw(chunk("post_process_inputs.glsl"))
}

// PostProcessSubpass declares the input attachment of a post-process material.
// Only descriptor-set targets have input attachments.
func (g *Generator) PostProcessSubpass(out *Source, subpass material.Subpass) *Source {
	if !subpass.IsValid() {
		return out
	}
	if !g.cfg.UsesDescriptorSets() {
		g.debug("subpass input skipped", "subpass", subpass.Name, "api", g.cfg.API)
		return out
	}
	checkIdentifier("subpass", subpass.Name)

	typeName := "subpassInput"
	switch subpass.Format {
	case material.FormatInt:
		typeName = "isubpassInput"
	case material.FormatUint:
		typeName = "usubpassInput"
	}
	params := material.SamplerBlock{Name: material.ParamsBlockName}
	name := params.UniformName(material.SamplerInfo{Name: subpass.Name})
	return out.Line("layout(input_attachment_index = %d, set = %d, binding = %d) %s;",
		subpass.AttachmentIndex, material.SetPerMaterial, subpass.Binding,
		join("uniform", resolve.PrecisionQualifier(subpass.Precision), typeName, name))
}
