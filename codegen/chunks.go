// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"embed"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

//go:embed chunks/*.glsl
var chunkFS embed.FS

// chunk returns the text of an embedded GLSL file. The set of files is fixed
// at build time, so a missing name is a programming error.
func chunk(name string) string {
	data, err := chunkFS.ReadFile("chunks/" + name)
	if err != nil {
		panic("codegen: missing chunk " + name)
	}
	return string(data)
}

// stageChunk picks the vertex or fragment flavour of a chunk. Other stages get nothing.
func stageChunk(out *Source, stage target.Stage, vertex, fragment string) *Source {
	switch stage {
	case target.StageVertex:
		if vertex != "" {
			out.Raw(chunk(vertex))
		}
	case target.StageFragment:
		if fragment != "" {
			out.Raw(chunk(fragment))
		}
	}
	return out
}

// SurfaceTypes writes the structures shared by surface material stages.
func (g *Generator) SurfaceTypes(out *Source, stage target.Stage) *Source {
	if stage == target.StageCompute {
		return out
	}
	return out.Raw(chunk("surface_types.glsl"))
}

// SurfaceCommon writes the math and engine helpers of surface materials.
func (g *Generator) SurfaceCommon(out *Source, stage target.Stage) *Source {
	out.Raw(chunk("common_math.glsl"))
	return stageChunk(out, stage, "", "common_graphics.fs.glsl")
}

// SurfaceGetters writes accessors for engine uniforms.
func (g *Generator) SurfaceGetters(out *Source, stage target.Stage) *Source {
	out.Raw(chunk("common_getters.glsl"))
	return stageChunk(out, stage, "getters.vs.glsl", "getters.fs.glsl")
}

// SurfaceParameters writes the shading parameter computation of the fragment stage.
func (g *Generator) SurfaceParameters(out *Source, stage target.Stage) *Source {
	return stageChunk(out, stage, "", "shading_parameters.fs.glsl")
}

// SurfaceMaterial writes the material inputs structure and its initializer.
func (g *Generator) SurfaceMaterial(out *Source, stage target.Stage) *Source {
	return stageChunk(out, stage, "material_inputs.vs.glsl", "material_inputs.fs.glsl")
}

// SurfaceLit writes the lighting code of lit shading models.
func (g *Generator) SurfaceLit(out *Source, stage target.Stage, variant material.Variant, shading material.Shading, customSurfaceShading bool) *Source {
	if stage != target.StageFragment {
		return out
	}
	out.Raw(chunk("common_lighting.fs.glsl"))
	if variant.Has(material.ShadowReceiver) {
		out.Raw(chunk("shadowing.fs.glsl"))
	}
	out.Raw(chunk("brdf.fs.glsl"))
	switch shading {
	case material.ShadingCloth:
		out.Raw(chunk("shading_model_cloth.fs.glsl"))
	case material.ShadingSubsurface:
		out.Raw(chunk("shading_model_subsurface.fs.glsl"))
	default:
		out.Raw(chunk("shading_model_standard.fs.glsl"))
	}
	if customSurfaceShading {
		out.Raw(chunk("shading_lit_custom.fs.glsl"))
	}
	out.Raw(chunk("light_indirect.fs.glsl"))
	if variant.Has(material.DirectionalLighting) {
		out.Raw(chunk("light_directional.fs.glsl"))
	}
	if variant.Has(material.DynamicLighting) {
		out.Raw(chunk("light_punctual.fs.glsl"))
	}
	return out.Raw(chunk("shading_lit.fs.glsl"))
}

// SurfaceUnlit writes the unlit shading code. Shadow-multiplier materials
// still sample shadows when the variant receives them.
func (g *Generator) SurfaceUnlit(out *Source, stage target.Stage, variant material.Variant, hasShadowMultiplier bool) *Source {
	if stage != target.StageFragment {
		return out
	}
	if hasShadowMultiplier && variant.Has(material.ShadowReceiver) {
		out.Raw(chunk("shadowing.fs.glsl"))
	}
	return out.Raw(chunk("shading_unlit.fs.glsl"))
}

// SurfaceReflections writes the screen-space reflections pass.
func (g *Generator) SurfaceReflections(out *Source, stage target.Stage) *Source {
	if stage != target.StageFragment {
		return out
	}
	out.Raw(chunk("common_lighting.fs.glsl"))
	return out.Raw(chunk("shading_reflections.fs.glsl"))
}

// SurfaceFog writes the fog functions.
func (g *Generator) SurfaceFog(out *Source, stage target.Stage) *Source {
	return stageChunk(out, stage, "", "fog.fs.glsl")
}

// SurfaceMain writes main() of a surface stage.
func (g *Generator) SurfaceMain(out *Source, stage target.Stage) *Source {
	return stageChunk(out, stage, "main.vs.glsl", "main.fs.glsl")
}

// SurfaceDepthMain writes the main() of depth-only fragment programs.
func (g *Generator) SurfaceDepthMain(out *Source, stage target.Stage) *Source {
	return stageChunk(out, stage, "main.vs.glsl", "depth_main.fs.glsl")
}

// PostProcessCommon writes the helpers of post-process materials.
func (g *Generator) PostProcessCommon(out *Source, stage target.Stage) *Source {
	out.Raw(chunk("common_math.glsl"))
	return stageChunk(out, stage, "", "common_graphics.fs.glsl")
}

// PostProcessGetters writes accessors for post-process engine uniforms.
func (g *Generator) PostProcessGetters(out *Source, stage target.Stage) *Source {
	out.Raw(chunk("common_getters.glsl"))
	return out.Raw(chunk("post_process_getters.glsl"))
}

// PostProcessMain writes main() of a post-process stage.
func (g *Generator) PostProcessMain(out *Source, stage target.Stage) *Source {
	return stageChunk(out, stage, "post_process_main.vs.glsl", "post_process_main.fs.glsl")
}

// ComputeCommon writes the helpers and input structure of a compute material.
func (g *Generator) ComputeCommon(out *Source, stage target.Stage) *Source {
	if stage != target.StageCompute {
		return out
	}
	out.Raw(chunk("common_math.glsl"))
	out.Raw(chunk("common_getters.glsl"))
	return out.Raw(chunk("compute_inputs.glsl"))
}

// ComputeMain writes main() of a compute material.
func (g *Generator) ComputeMain(out *Source, stage target.Stage) *Source {
	if stage != target.StageCompute {
		return out
	}
	return out.Raw(chunk("compute_main.glsl"))
}
