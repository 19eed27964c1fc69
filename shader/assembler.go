// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"strings"

	"github.com/gogpu/matgen/codegen"
	"github.com/gogpu/matgen/internal/logx"
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

// Assembler generates the programs of one material for one target.
type Assembler struct {
	material *material.Material
	cfg      target.Config
	baseline codegen.Allocator
}

// New returns an Assembler whose programs allocate from zero.
// It panics with target.ErrUnresolvedTarget if cfg.API is target.APIAll.
func New(m *material.Material, cfg target.Config) *Assembler {
	return NewFrom(m, cfg, codegen.Allocator{})
}

// NewFrom returns an Assembler whose programs allocate from baseline.
func NewFrom(m *material.Material, cfg target.Config, baseline codegen.Allocator) *Assembler {
	cfg.MustBeConcrete()
	return &Assembler{material: m, cfg: cfg, baseline: baseline}
}

// Config returns the target configuration.
func (a *Assembler) Config() target.Config { return a.cfg }

// Generate assembles the program of stage for variant. Flags the material,
// target or stage cannot use are dropped; Program.Variant holds the rest.
func (a *Assembler) Generate(stage target.Stage, variant material.Variant) (*Program, error) {
	effective := effectiveVariant(a.material, a.cfg, variant)
	filtered := stageVariant(effective, stage)
	body, err := SelectBody(stage, a.material, filtered)
	if err != nil {
		return nil, err
	}

	s := newSession(codegen.NewFrom(a.cfg, a.baseline), a.material, stage, filtered)
	s.writeProlog()
	s.writeDeclarations(resourceVariant(effective))
	s.writeBody(body)
	s.writeEpilog()

	source := codegen.FixupExternalSamplers(s.out.String(), &a.material.Samplers, a.cfg)
	p := s.program(source, body)
	logx.With("shader").Debug("program generated",
		"material", a.material.Name, "stage", stage, "variant", filtered, "body", body, "bytes", len(source))
	return p, nil
}

// GeneratePair assembles the vertex and fragment programs of variant. Both
// start from the same allocator baseline and declare the same resources, so
// they agree on every binding.
func (a *Assembler) GeneratePair(variant material.Variant) (vertex, fragment *Program, err error) {
	vertex, err = a.Generate(target.StageVertex, variant)
	if err != nil {
		return nil, nil, err
	}
	fragment, err = a.Generate(target.StageFragment, variant)
	if err != nil {
		return nil, nil, err
	}
	return vertex, fragment, nil
}

func (s *session) writeProlog() {
	s.enter(PhaseProlog)
	s.gen.CommonProlog(&s.out, s.stage, s.material, s.variant)
	s.out.Separator()
}

func (s *session) writeDeclarations(resources material.Variant) {
	s.enter(PhaseDeclarations)
	g, out, m := s.gen, &s.out, s.material

	for _, d := range variantDefines {
		g.Define(out, d.symbol, s.variant.Has(d.flag))
	}
	s.materialDefines()
	g.DefineValue(out, maxLightsSymbol, MaxLights)
	g.DefineValue(out, maxBonesSymbol, MaxBones)
	out.Separator()

	if m.Domain == material.DomainSurface {
		g.SurfaceTypes(out, s.stage)
		out.Separator()
	}

	s.declareEngineResources(resources)
	if !m.Uniforms.IsEmpty() {
		s.uniforms(material.SetPerMaterial, bindingMaterialParams, &m.Uniforms)
	}
	s.samplers(material.SetPerMaterial, &m.Samplers)
	s.buffers(m.Buffers)
	out.Separator()

	switch m.Domain {
	case material.DomainSurface:
		g.SurfaceShaderInputs(out, s.stage, m.Attributes, m.Interpolation, m.PushConstants)
		if s.stage == target.StageVertex && len(m.PushConstants) > 0 {
			s.record(BindingPushConstant, codegen.PushConstantStructName, 0, 0, 0)
		}
		out.Separator()
		for i, v := range m.Variables {
			g.CommonVariable(out, s.stage, v, i)
		}
	case material.DomainPostProcess:
		g.PostProcessInputs(out, s.stage)
		if s.stage == target.StageFragment && m.Subpass.IsValid() && g.Config().UsesDescriptorSets() {
			g.PostProcessSubpass(out, m.Subpass)
			s.record(BindingSubpass, m.Subpass.Name, material.SetPerMaterial, uint32(m.Subpass.Binding), 0)
		}
	}
	out.Separator()

	for _, o := range s.outputs() {
		g.Output(out, s.stage, o)
	}
	out.Separator()
}

func (s *session) writeEpilog() {
	s.enter(PhaseEpilog)
	s.gen.CommonEpilog(&s.out)
}

// materialDefines announces the material's settings to the chunks.
func (s *session) materialDefines() {
	g, out, m := s.gen, &s.out, s.material

	if m.Domain == material.DomainSurface {
		g.Define(out, m.Shading.Define(), true)
		g.Define(out, "BLEND_MODE_"+strings.ToUpper(m.Blending.String()), true)
		g.Define(out, "VERTEX_DOMAIN_"+strings.ToUpper(m.VertexDomain.String()), true)
		g.Define(out, "FLIP_UV_ATTRIBUTE", m.FlipUV)
		g.Define(out, "MATERIAL_HAS_SHADOW_MULTIPLIER", m.HasShadowMultiplier)
		g.Define(out, "MATERIAL_HAS_CUSTOM_SURFACE_SHADING", m.HasCustomSurfaceShading)
		g.Define(out, "MATERIAL_HAS_DOUBLE_SIDED_CAPABILITY", m.DoubleSided)
		for _, p := range material.Properties() {
			g.MaterialProperty(out, p, m.Properties.Has(p))
		}
	}
	g.QualityDefine(out, m.Quality)
}

// outputs returns the fragment outputs, declaring a default color output when
// the material has none. Every main() writes output 0.
func (s *session) outputs() []material.Output {
	if len(s.material.Outputs) > 0 || s.material.Domain == material.DomainCompute {
		return s.material.Outputs
	}
	return []material.Output{{Name: "color", Type: material.OutputFloat4}}
}

func (s *session) uniforms(set material.DescriptorSet, binding uint32, layout *material.BufferLayout) {
	index := s.gen.Allocator().Counters().UniformBlocks
	s.gen.Uniforms(&s.out, s.stage, set, binding, layout)
	s.record(BindingUniform, layout.BlockName(), set, binding, index)
}

func (s *session) samplers(set material.DescriptorSet, block *material.SamplerBlock) {
	first := s.gen.Allocator().Counters().Samplers
	s.gen.Samplers(&s.out, set, block)
	for i, info := range block.Samplers {
		s.record(BindingSampler, block.UniformName(info), set, uint32(info.Binding), first+uint32(i)) //nolint:gosec // G115: sampler count is small
	}
}

// buffers declares storage blocks after the last material sampler binding.
func (s *session) buffers(layouts []material.BufferLayout) {
	if len(layouts) == 0 {
		return
	}
	binding := bindingMaterialParams + 1
	for _, info := range s.material.Samplers.Samplers {
		binding = max(binding, uint32(info.Binding)+1)
	}
	first := s.gen.Allocator().Counters().StorageBlocks
	s.gen.Buffers(&s.out, layouts, binding)
	for i := range layouts {
		s.record(BindingStorage, layouts[i].BlockName(), material.SetPerMaterial, binding+uint32(i), first+uint32(i)) //nolint:gosec // G115: buffer count is small
	}
}
