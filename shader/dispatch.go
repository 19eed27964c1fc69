// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

// Body identifies the routine that writes the stage-specific part of a program.
type Body uint8

const (
	BodyVertex Body = iota
	BodyDepth
	BodyLit
	BodyUnlit
	BodyReflections
	BodyPostProcess
	BodyCompute
)

// String returns the body name.
func (b Body) String() string {
	switch b {
	case BodyVertex:
		return "vertex"
	case BodyDepth:
		return "depth"
	case BodyLit:
		return "lit"
	case BodyUnlit:
		return "unlit"
	case BodyReflections:
		return "reflections"
	case BodyPostProcess:
		return "post_process"
	case BodyCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// SelectBody picks the body routine for stage. variant must already be
// filtered for the stage. Fog never changes the choice; it only adds the fog
// chunk to the fragment bodies that shade.
func SelectBody(stage target.Stage, m *material.Material, variant material.Variant) (Body, error) {
	switch m.Domain {
	case material.DomainSurface:
		switch stage {
		case target.StageVertex:
			return BodyVertex, nil
		case target.StageFragment:
			switch {
			case variant.IsDepth():
				return BodyDepth, nil
			case variant.Has(material.SSR):
				return BodyReflections, nil
			case m.IsLit():
				return BodyLit, nil
			default:
				return BodyUnlit, nil
			}
		}
	case material.DomainPostProcess:
		if stage == target.StageVertex || stage == target.StageFragment {
			return BodyPostProcess, nil
		}
	case material.DomainCompute:
		if stage == target.StageCompute {
			return BodyCompute, nil
		}
	}
	return 0, fmt.Errorf("shader: %s stage of %s material: %w", stage, m.Domain, ErrStageNotSupported)
}

// writeBody writes body followed by the material code and main().
func (s *session) writeBody(body Body) {
	s.enter(PhaseBody)
	g, out, stage := s.gen, &s.out, s.stage
	m := s.material

	switch body {
	case BodyVertex:
		g.SurfaceCommon(out, stage)
		g.SurfaceGetters(out, stage)
		g.SurfaceMaterial(out, stage)
		s.materialCode(m.VertexCode, defaultMaterialVertex)
		g.SurfaceMain(out, stage)

	case BodyDepth:
		s.surfaceFragmentPrelude()
		s.materialCode(m.FragmentCode, defaultMaterial)
		g.SurfaceDepthMain(out, stage)

	case BodyLit:
		s.surfaceFragmentPrelude()
		g.SurfaceLit(out, stage, s.variant, m.Shading, m.HasCustomSurfaceShading)
		s.fog()
		s.materialCode(m.FragmentCode, defaultMaterial)
		g.SurfaceMain(out, stage)

	case BodyUnlit:
		s.surfaceFragmentPrelude()
		g.SurfaceUnlit(out, stage, s.variant, m.HasShadowMultiplier)
		s.fog()
		s.materialCode(m.FragmentCode, defaultMaterial)
		g.SurfaceMain(out, stage)

	case BodyReflections:
		s.surfaceFragmentPrelude()
		g.SurfaceReflections(out, stage)
		s.fog()
		s.materialCode(m.FragmentCode, defaultMaterial)
		g.SurfaceMain(out, stage)

	case BodyPostProcess:
		g.PostProcessCommon(out, stage)
		g.PostProcessGetters(out, stage)
		if stage == target.StageVertex {
			s.materialCode(m.VertexCode, defaultPostProcessVertex)
		} else {
			s.materialCode(m.FragmentCode, defaultPostProcess)
		}
		g.PostProcessMain(out, stage)

	case BodyCompute:
		g.ComputeCommon(out, stage)
		s.materialCode(m.ComputeCode, defaultCompute)
		g.ComputeMain(out, stage)
	}
}

func (s *session) surfaceFragmentPrelude() {
	s.gen.SurfaceCommon(&s.out, s.stage)
	s.gen.SurfaceGetters(&s.out, s.stage)
	s.gen.SurfaceMaterial(&s.out, s.stage)
	s.gen.SurfaceParameters(&s.out, s.stage)
}

func (s *session) fog() {
	if s.variant.Has(material.Fog) {
		s.gen.SurfaceFog(&s.out, s.stage)
	}
}

// Hooks written when the material brings no code of its own.
const (
	defaultMaterialVertex    = "void materialVertex(inout MaterialVertexInputs material) {\n}\n"
	defaultMaterial          = "void material(inout MaterialInputs material) {\n    prepareMaterial(material);\n}\n"
	defaultPostProcessVertex = "void postProcessVertex(inout PostProcessVertexInputs inputs) {\n}\n"
	defaultPostProcess       = "void postProcess(inout PostProcessInputs inputs) {\n}\n"
	defaultCompute           = "void compute(inout ComputeInputs inputs) {\n}\n"
)

// materialCode appends hand-written material code verbatim, or fallback
// when there is none.
func (s *session) materialCode(code, fallback string) {
	s.out.Separator()
	if code == "" {
		code = fallback
	}
	s.out.Raw(code)
	s.out.Separator()
}
