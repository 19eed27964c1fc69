// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/resolve"
	"github.com/gogpu/matgen/target"
)

// Reserved specialization constant ids. Material constants start at
// ReservedSpecConstants.
const (
	SpecConstantFeatureLevel uint32 = iota
	SpecConstantMaxInstances
	SpecConstantFroxelBufferHeight
	SpecConstantDebugDirectionalShadowmap
	SpecConstantDebugFroxelVisualization

	ReservedSpecConstants uint32 = 8
)

// Engine limits baked into the reserved specialization constants.
const (
	MaxInstances       = 64
	FroxelBufferHeight = 1024
)

// MaterialConstantPrefix prefixes the GLSL name of material constants.
const MaterialConstantPrefix = "materialConstants_"

// CommonProlog writes everything that precedes declarations: #version,
// extensions, environment defines, feature-level compatibility macros,
// specialization constants, default precisions and shared types.
func (g *Generator) CommonProlog(out *Source, stage target.Stage, m *material.Material, variant material.Variant) *Source {
	out.Line("#version %s", g.cfg.Version())
	g.extensions(out, stage, m, variant)
	out.Separator()

	g.environmentDefines(out, stage)
	out.Separator()

	g.compatibilityMacros(out, stage)
	out.Separator()

	g.specializationConstants(out, m)
	out.Separator()

	if stage == target.StageCompute {
		size := m.GroupSize
		for i := range size {
			size[i] = max(size[i], 1)
		}
		out.Line("layout(local_size_x = %d, local_size_y = %d, local_size_z = %d) in;", size[0], size[1], size[2])
		out.Separator()
	}

	precision := resolve.PrecisionQualifier(resolve.StagePrecision(g.cfg, stage))
	out.Line("precision %s float;", precision)
	out.Line("precision %s int;", precision)
	if g.cfg.Model == target.ShaderModelMobile && g.cfg.FeatureLevel > target.FeatureLevel0 {
		out.Line("precision lowp sampler2DArray;")
		if hasSamplerType(&m.Samplers, material.Sampler3D) {
			out.Line("precision lowp sampler3D;")
		}
	}
	out.Separator()

	return out.Raw(chunk("common_types.glsl"))
}

func (g *Generator) extensions(out *Source, stage target.Stage, m *material.Material, variant material.Variant) {
	if m.HasExternalSamplers() && g.cfg.SupportsExternalSamplers() {
		out.Line("#extension %s : require", externalSamplerExtension(g.cfg.FeatureLevel))
	}
	if stage == target.StageVertex && variant.Has(material.Stereo) &&
		g.cfg.API == target.APIOpenGL && g.cfg.FeatureLevel > target.FeatureLevel0 {
		out.Line("#extension GL_OVR_multiview2 : require")
	}
	if stage == target.StageFragment && g.cfg.FeatureLevel == target.FeatureLevel0 {
		out.Line("#extension GL_OES_standard_derivatives : enable")
		out.Line("#extension GL_EXT_shader_texture_lod : enable")
	}
}

func (g *Generator) environmentDefines(out *Source, stage target.Stage) {
	if g.cfg.Model == target.ShaderModelMobile {
		out.Line("#define TARGET_MOBILE")
	} else {
		out.Line("#define TARGET_DESKTOP")
	}

	switch g.cfg.API {
	case target.APIOpenGL:
		out.Line("#define TARGET_GL_ENVIRONMENT")
	case target.APIVulkan:
		out.Line("#define TARGET_VULKAN_ENVIRONMENT")
	case target.APIMetal:
		out.Line("#define TARGET_METAL_ENVIRONMENT")
	case target.APIWebGPU:
		out.Line("#define TARGET_WEBGPU_ENVIRONMENT")
	}

	if g.cfg.Language == target.LanguageSPIRV {
		out.Line("#define TARGET_LANGUAGE_SPIRV")
	} else {
		out.Line("#define TARGET_LANGUAGE_GLSL")
	}

	switch stage {
	case target.StageVertex:
		out.Line("#define VERTEX_SHADER")
	case target.StageFragment:
		out.Line("#define FRAGMENT_SHADER")
	case target.StageCompute:
		out.Line("#define COMPUTE_SHADER")
	}
}

// compatibilityMacros papers over the syntax differences between ESSL 1.00
// and later dialects so the shared chunks compile everywhere.
func (g *Generator) compatibilityMacros(out *Source, stage target.Stage) {
	if g.cfg.FeatureLevel == target.FeatureLevel0 {
		out.Line("#define LAYOUT_LOCATION(x)")
		out.Line("#define BLOCK_FIELD(instance, field) field")
		switch stage {
		case target.StageVertex:
			out.Line("#define ATTRIBUTE attribute")
			out.Line("#define VARYING varying")
		case target.StageFragment:
			out.Line("#define VARYING varying")
			out.Line("#define textureLod texture2DLodEXT")
			out.Line("#define textureCubeLod textureCubeLodEXT")
		}
		return
	}

	if g.cfg.Version().SupportsExplicitLocation() || g.cfg.Language == target.LanguageSPIRV {
		out.Line("#define LAYOUT_LOCATION(x) layout(location = x)")
	} else {
		out.Line("#define LAYOUT_LOCATION(x)")
	}
	out.Line("#define BLOCK_FIELD(instance, field) instance.field")
	switch stage {
	case target.StageVertex:
		out.Line("#define ATTRIBUTE in")
		out.Line("#define VARYING out")
	case target.StageFragment:
		out.Line("#define VARYING in")
		out.Line("#define textureCubeLod textureLod")
	}
}

func (g *Generator) specializationConstants(out *Source, m *material.Material) {
	g.SpecializationConstant(out, "BACKEND_FEATURE_LEVEL", SpecConstantFeatureLevel,
		material.IntValue(int32(g.cfg.FeatureLevel)))
	g.SpecializationConstant(out, "CONFIG_MAX_INSTANCES", SpecConstantMaxInstances,
		material.IntValue(MaxInstances))
	g.SpecializationConstant(out, "CONFIG_FROXEL_BUFFER_HEIGHT", SpecConstantFroxelBufferHeight,
		material.IntValue(FroxelBufferHeight))
	g.SpecializationConstant(out, "CONFIG_DEBUG_DIRECTIONAL_SHADOWMAP", SpecConstantDebugDirectionalShadowmap,
		material.BoolValue(false))
	g.SpecializationConstant(out, "CONFIG_DEBUG_FROXEL_VISUALIZATION", SpecConstantDebugFroxelVisualization,
		material.BoolValue(false))

	for i, c := range m.Constants {
		checkIdentifier("constant", c.Name)
		g.SpecializationConstant(out, MaterialConstantPrefix+c.Name, ReservedSpecConstants+uint32(i), c.Value) //nolint:gosec // G115: constant count is small
	}
}

// CommonEpilog closes a program.
func (g *Generator) CommonEpilog(out *Source) *Source {
	return out.Separator()
}

// Separator writes an empty line between sections.
func (g *Generator) Separator(out *Source) *Source {
	return out.Separator()
}
