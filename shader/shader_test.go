// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/matgen/codegen"
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

func requireFail(t *testing.T, kind target.ErrorKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a %s panic", kind)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, &target.Error{Kind: kind}), "got %v", err)
	}()
	fn()
}

var (
	vulkan     = target.Resolve(target.APIVulkan, target.ShaderModelDesktop, target.FeatureLevel2)
	metal      = target.Resolve(target.APIMetal, target.ShaderModelMobile, target.FeatureLevel2)
	mobileGL0  = target.Resolve(target.APIOpenGL, target.ShaderModelMobile, target.FeatureLevel0)
	mobileGL1  = target.Resolve(target.APIOpenGL, target.ShaderModelMobile, target.FeatureLevel1)
	mobileGL2  = target.Resolve(target.APIOpenGL, target.ShaderModelMobile, target.FeatureLevel2)
	desktopGL1 = target.Resolve(target.APIOpenGL, target.ShaderModelDesktop, target.FeatureLevel1)
)

const litFragmentCode = `void material(inout MaterialInputs material) {
    prepareMaterial(material);
    material.baseColor = texture(materialParams_albedo, getUV0()) * materialParams.baseColor;
}`

func litMaterial() *material.Material {
	attrs := material.AttributeBitset(0).
		Set(material.AttributePosition).
		Set(material.AttributeTangents).
		Set(material.AttributeUV0)
	return &material.Material{
		Name:       "brick",
		Domain:     material.DomainSurface,
		Shading:    material.ShadingLit,
		Attributes: attrs,
		Uniforms: material.BufferLayout{
			Name: material.ParamsBlockName,
			Fields: []material.Field{
				{Name: "baseColor", Type: material.TypeFloat4},
				{Name: "roughness", Type: material.TypeFloat, Precision: material.PrecisionMedium},
			},
		},
		Samplers: material.SamplerBlock{
			Name: material.ParamsBlockName,
			Samplers: []material.SamplerInfo{
				{Name: "albedo", Binding: 1, Type: material.Sampler2D, Precision: material.PrecisionMedium},
			},
		},
		Variables:    []material.CustomVariable{{Name: "eyeDirection", Type: material.TypeFloat4}},
		FragmentCode: litFragmentCode,
	}
}

func computeMaterial() *material.Material {
	return &material.Material{
		Name:   "particles",
		Domain: material.DomainCompute,
		Buffers: []material.BufferLayout{{
			Name: "Particles", Target: material.TargetStorage, Alignment: material.AlignmentStd430,
			Fields: []material.Field{{Name: "positions", Type: material.TypeFloat4, IsArray: true}},
		}},
		GroupSize: [3]uint32{64, 1, 1},
	}
}

func postProcessMaterial() *material.Material {
	return &material.Material{
		Name:    "tonemap",
		Domain:  material.DomainPostProcess,
		Subpass: material.Subpass{Name: "color", Binding: 1, Precision: material.PrecisionMedium},
	}
}

// bindingLines returns the layout-qualified block and sampler declarations of src.
func bindingLines(src string) []string {
	var out []string
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(line, "layout(") && (strings.Contains(line, " uniform ") || strings.Contains(line, " buffer ")) {
			out = append(out, line)
		}
	}
	return out
}

// assertOrdered asserts that every marker occurs in src, each after the previous one.
func assertOrdered(t *testing.T, src string, markers ...string) {
	t.Helper()
	last := -1
	for _, m := range markers {
		idx := strings.Index(src, m)
		if !assert.GreaterOrEqual(t, idx, 0, "missing %q", m) {
			return
		}
		assert.Greater(t, idx, last, "%q is out of order", m)
		last = idx
	}
}

// =============================================================================
// Construction and Phase Tests
// =============================================================================

func TestNew_UnresolvedTarget(t *testing.T) {
	cfg := target.Config{Model: target.ShaderModelDesktop, API: target.APIAll, Language: target.LanguageSPIRV, FeatureLevel: target.FeatureLevel1}
	requireFail(t, target.ErrUnresolvedTarget, func() { New(litMaterial(), cfg) })
}

func TestSession_PhaseOrder(t *testing.T) {
	s := newSession(codegen.New(vulkan), litMaterial(), target.StageVertex, 0)
	s.enter(PhaseProlog)
	s.enter(PhaseBody)
	s.enter(PhaseBody)
	assert.Equal(t, PhaseBody, s.phase)

	requireFail(t, target.ErrPhaseOrder, func() { s.enter(PhaseDeclarations) })
	requireFail(t, target.ErrPhaseOrder, func() { s.enter(PhaseProlog) })
	s.enter(PhaseEpilog)
	assert.Equal(t, PhaseEpilog, s.phase)
}

// =============================================================================
// Dispatch Tests
// =============================================================================

func TestSelectBody(t *testing.T) {
	lit := litMaterial()
	unlit := litMaterial()
	unlit.Shading = material.ShadingUnlit

	tests := []struct {
		name    string
		m       *material.Material
		stage   target.Stage
		variant material.Variant
		want    Body
	}{
		{"surface vertex", lit, target.StageVertex, material.DirectionalLighting, BodyVertex},
		{"depth vertex", lit, target.StageVertex, material.Depth, BodyVertex},
		{"depth fragment", lit, target.StageFragment, material.Depth | material.VSM, BodyDepth},
		{"reflections", lit, target.StageFragment, material.SSR, BodyReflections},
		{"lit", lit, target.StageFragment, material.DirectionalLighting | material.ShadowReceiver, BodyLit},
		{"lit without lights", lit, target.StageFragment, 0, BodyLit},
		{"unlit", unlit, target.StageFragment, 0, BodyUnlit},
		{"post-process vertex", postProcessMaterial(), target.StageVertex, 0, BodyPostProcess},
		{"post-process fragment", postProcessMaterial(), target.StageFragment, 0, BodyPostProcess},
		{"compute", computeMaterial(), target.StageCompute, 0, BodyCompute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectBody(tt.stage, tt.m, tt.variant)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			withFog, err := SelectBody(tt.stage, tt.m, tt.variant|material.Fog)
			require.NoError(t, err)
			assert.Equal(t, got, withFog, "fog must not change the body")
		})
	}
}

func TestSelectBody_StageNotSupported(t *testing.T) {
	tests := []struct {
		name  string
		m     *material.Material
		stage target.Stage
	}{
		{"surface compute", litMaterial(), target.StageCompute},
		{"post-process compute", postProcessMaterial(), target.StageCompute},
		{"compute vertex", computeMaterial(), target.StageVertex},
		{"compute fragment", computeMaterial(), target.StageFragment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectBody(tt.stage, tt.m, 0)
			assert.ErrorIs(t, err, ErrStageNotSupported)
		})
	}
}

func TestEffectiveVariant(t *testing.T) {
	unlit := litMaterial()
	unlit.Shading = material.ShadingUnlit
	shadowed := litMaterial()
	shadowed.Shading = material.ShadingUnlit
	shadowed.HasShadowMultiplier = true

	all := material.DirectionalLighting | material.DynamicLighting | material.ShadowReceiver |
		material.Skinning | material.Fog | material.VSM | material.SSR

	tests := []struct {
		name string
		m    *material.Material
		cfg  target.Config
		want material.Variant
	}{
		{"lit keeps all", litMaterial(), vulkan, all},
		{"unlit drops lighting", unlit, vulkan, material.Skinning | material.Fog},
		{"shadow multiplier keeps shadows", shadowed, vulkan, material.ShadowReceiver | material.Skinning | material.Fog | material.VSM},
		{"feature level 0", litMaterial(), mobileGL0, material.DirectionalLighting | material.Fog},
		{"post-process", postProcessMaterial(), vulkan, 0},
		{"compute", computeMaterial(), vulkan, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, effectiveVariant(tt.m, tt.cfg, all))
		})
	}
}

// =============================================================================
// Program Assembly Tests
// =============================================================================

func TestGenerate_SectionOrder(t *testing.T) {
	fs, err := New(litMaterial(), vulkan).Generate(target.StageFragment, material.DirectionalLighting)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fs.Source, "#version 450 core\n"))
	assertOrdered(t, fs.Source,
		"#define FRAGMENT_SHADER",
		"#define VARIANT_HAS_DIRECTIONAL_LIGHTING",
		"#define SHADING_MODEL_LIT",
		"uniform FrameUniforms {",
		"uniform MaterialParams {",
		"uniform mediump sampler2D materialParams_albedo;",
		"VARYING vec4 variable_eyeDirection;",
		"layout(location = 0) out vec4 output_color;",
		"// Lit shading",
		litFragmentCode,
		"// Fragment main",
	)
	assert.Equal(t, BodyLit, fs.Body)
	assert.Equal(t, material.DirectionalLighting, fs.Variant)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := New(litMaterial(), mobileGL1)
	first, err := a.Generate(target.StageFragment, material.DirectionalLighting|material.ShadowReceiver)
	require.NoError(t, err)
	second, err := a.Generate(target.StageFragment, material.DirectionalLighting|material.ShadowReceiver)
	require.NoError(t, err)
	assert.Equal(t, first.Source, second.Source)
	assert.Equal(t, first.Bindings, second.Bindings)
}

func TestGeneratePair_BindingsAgree(t *testing.T) {
	configs := map[string]target.Config{
		"vulkan": vulkan, "metal": metal, "gles31": mobileGL2,
		"gles30": mobileGL1, "gles20": mobileGL0, "gl41": desktopGL1,
	}
	variants := []material.Variant{
		0,
		material.DirectionalLighting | material.ShadowReceiver,
		material.DirectionalLighting | material.DynamicLighting | material.ShadowReceiver | material.Skinning | material.Fog,
		material.Depth | material.Skinning | material.VSM,
		material.SSR | material.Fog,
	}

	for name, cfg := range configs {
		for _, v := range variants {
			t.Run(name+"/"+v.String(), func(t *testing.T) {
				vs, fs, err := New(litMaterial(), cfg).GeneratePair(v)
				require.NoError(t, err)
				assert.Equal(t, target.StageVertex, vs.Stage)
				assert.Equal(t, target.StageFragment, fs.Stage)
				assert.Equal(t, bindingLines(vs.Source), bindingLines(fs.Source))
				assert.Equal(t, vs.Bindings, fs.Bindings)
				assert.Equal(t, vs.Counters, fs.Counters)
			})
		}
	}
}

func TestGeneratePair_Baseline(t *testing.T) {
	var baseline codegen.Allocator
	baseline.NextUniformBlock()
	baseline.NextSampler()

	vs, fs, err := NewFrom(litMaterial(), mobileGL2, baseline).GeneratePair(0)
	require.NoError(t, err)
	frame, ok := vs.Lookup("FrameUniforms")
	require.True(t, ok)
	assert.Equal(t, uint32(1), frame.Index)
	assert.Contains(t, fs.Source, "layout(binding = 1, std140) uniform FrameUniforms {")
}

func TestGenerate_DepthHasNoLighting(t *testing.T) {
	a := New(litMaterial(), vulkan)
	fs, err := a.Generate(target.StageFragment, material.Depth|material.DirectionalLighting|material.ShadowReceiver|material.Fog)
	require.NoError(t, err)

	assert.Equal(t, BodyDepth, fs.Body)
	assert.Equal(t, material.Depth, fs.Variant)
	for _, marker := range []string{"// Lighting common", "// Lit shading", "// Directional light", "// Shadowing", "// Fog", "evaluateMaterial("} {
		assert.NotContains(t, fs.Source, marker)
	}
	assert.Contains(t, fs.Source, "// Depth main")
	assert.Contains(t, fs.Source, litFragmentCode)
}

func TestGenerate_FogOnlyWithFlag(t *testing.T) {
	unlit := litMaterial()
	unlit.Shading = material.ShadingUnlit

	for _, m := range []*material.Material{litMaterial(), unlit} {
		a := New(m, vulkan)
		without, err := a.Generate(target.StageFragment, material.DirectionalLighting)
		require.NoError(t, err)
		assert.NotContains(t, without.Source, "vec4 fog(vec4 color")

		with, err := a.Generate(target.StageFragment, material.DirectionalLighting|material.Fog)
		require.NoError(t, err)
		assert.Contains(t, with.Source, "vec4 fog(vec4 color")
		assert.Contains(t, with.Source, "#define VARIANT_HAS_FOG\n")
		assert.Equal(t, without.Body, with.Body)

		vs, err := a.Generate(target.StageVertex, material.Fog)
		require.NoError(t, err)
		assert.NotContains(t, vs.Source, "vec4 fog(vec4 color")
	}
}

func TestGenerate_EngineResources(t *testing.T) {
	a := New(litMaterial(), vulkan)

	plain, err := a.Generate(target.StageFragment, 0)
	require.NoError(t, err)
	names := make([]string, 0, len(plain.Bindings))
	for _, b := range plain.Bindings {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"FrameUniforms", "ObjectUniforms", "MaterialParams", "materialParams_albedo"}, names)

	full, err := a.Generate(target.StageFragment, material.DirectionalLighting|material.DynamicLighting|material.ShadowReceiver|material.Skinning|material.SSR)
	require.NoError(t, err)
	for _, name := range []string{"BonesUniforms", "LightsUniforms", "ShadowUniforms", "light_shadowMap", "light_iblSpecular", "light_ssr"} {
		_, ok := full.Lookup(name)
		assert.True(t, ok, "missing %s", name)
	}
	assert.Contains(t, full.Source, "layout(binding = 1, set = 0, std140) uniform LightsUniforms {\n    mat4 lights[CONFIG_MAX_LIGHTS];\n} lightsUniforms;")
	assert.Contains(t, full.Source, "layout(binding = 3, set = 0) uniform mediump sampler2DArrayShadow light_shadowMap;")
	assert.Contains(t, full.Source, "#define CONFIG_MAX_LIGHTS 64\n")

	shadow, _ := full.Lookup("ShadowUniforms")
	assert.Equal(t, Binding{Kind: BindingUniform, Name: "ShadowUniforms", Set: material.SetPerView, Binding: 2, Index: 4}, shadow)
}

func TestGenerate_DefaultHooksAndOutput(t *testing.T) {
	m := litMaterial()
	m.FragmentCode = ""

	vs, fs, err := New(m, vulkan).GeneratePair(0)
	require.NoError(t, err)
	assert.Contains(t, vs.Source, defaultMaterialVertex)
	assert.Contains(t, fs.Source, defaultMaterial)
	assert.Contains(t, fs.Source, "#define FRAG_OUTPUT0 color\n")
	assert.Contains(t, fs.Source, "layout(location = 0) out vec4 output_color;\n")
	assert.NotContains(t, vs.Source, "output_color")
}

func TestGenerate_Metal(t *testing.T) {
	m := litMaterial()
	m.PushConstants = []material.PushConstant{{Name: "morphingBufferOffset", Type: material.ConstantInt}}

	vs, fs, err := New(m, metal).GeneratePair(0)
	require.NoError(t, err)

	tests := []struct {
		name   string
		buffer uint32
	}{
		{"FrameUniforms", codegen.MetalDescriptorSetBindingStart},
		{"ObjectUniforms", codegen.MetalDescriptorSetBindingStart + 1},
		{"MaterialParams", codegen.MetalDescriptorSetBindingStart + 2},
		{"materialParams_albedo", codegen.MetalDescriptorSetBindingStart + 2},
	}
	for _, tt := range tests {
		b, ok := fs.Lookup(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.buffer, b.MetalBuffer, tt.name)
	}

	pc, ok := vs.Lookup(codegen.PushConstantStructName)
	require.True(t, ok)
	assert.Equal(t, BindingPushConstant, pc.Kind)
	assert.Equal(t, codegen.MetalPushConstantBufferIndex, pc.MetalBuffer)
	assert.Equal(t, codegen.MetalDynamicOffsetBinding, fs.DynamicOffsetBuffer)

	// Metal outputs are widened to four components.
	assert.Contains(t, fs.Source, "#define FRAG_OUTPUT_TYPE0 vec4\n")

	gl, err := New(m, mobileGL2).Generate(target.StageFragment, 0)
	require.NoError(t, err)
	assert.Zero(t, gl.DynamicOffsetBuffer)
	frame, _ := gl.Lookup("FrameUniforms")
	assert.Zero(t, frame.MetalBuffer)
}

func TestGenerate_FeatureLevel0(t *testing.T) {
	all := material.DirectionalLighting | material.DynamicLighting | material.ShadowReceiver | material.Skinning | material.Fog
	vs, fs, err := New(litMaterial(), mobileGL0).GeneratePair(all)
	require.NoError(t, err)

	assert.Equal(t, material.DirectionalLighting|material.Fog, fs.Variant)
	assert.Equal(t, material.DirectionalLighting, vs.Variant)
	for _, p := range []*Program{vs, fs} {
		assert.True(t, strings.HasPrefix(p.Source, "#version 100\n"))
		assert.Contains(t, p.Source, "// Uniforms from block FrameUniforms\n")
		assert.Contains(t, p.Source, "// Uniforms from block MaterialParams\n")
		assert.NotContains(t, p.Source, "uniform FrameUniforms {")
		assert.NotContains(t, p.Source, "ShadowUniforms")
		assert.NotContains(t, p.Source, "LightsUniforms")
	}
	assert.Contains(t, fs.Source, "#define FRAG_OUTPUT_AT0 gl_FragData[0]\n")
	assert.Equal(t, codegen.Counters{Samplers: 2, UniformBlocks: 3}, fs.Counters)
}

func TestGenerate_FeatureLevel0_CubemapLod(t *testing.T) {
	fs, err := New(litMaterial(), mobileGL0).Generate(target.StageFragment, material.DirectionalLighting)
	require.NoError(t, err)

	assert.Contains(t, fs.Source, "uniform mediump samplerCube light_iblSpecular;")
	assert.Contains(t, fs.Source, "#define textureCubeLod textureCubeLodEXT\n")
	assert.Contains(t, fs.Source, "textureCubeLod(light_iblSpecular, r, lod)")
	assert.NotContains(t, fs.Source, "textureLod(light_iblSpecular")
}

func TestGenerate_FeatureLevel0_UniformNameCollision(t *testing.T) {
	m := litMaterial()
	m.Uniforms.Fields = append(m.Uniforms.Fields, material.Field{Name: "time", Type: material.TypeFloat})

	requireFail(t, target.ErrReservedIdentifier, func() {
		_, _ = New(m, mobileGL0).Generate(target.StageFragment, material.DirectionalLighting)
	})

	fs, err := New(m, mobileGL1).Generate(target.StageFragment, material.DirectionalLighting)
	require.NoError(t, err)
	assert.Contains(t, fs.Source, "    float time;\n")
}

func TestGenerate_ExternalSamplers(t *testing.T) {
	m := litMaterial()
	m.Samplers.Samplers = append(m.Samplers.Samplers, material.SamplerInfo{Name: "video", Binding: 2, Type: material.SamplerExternal})
	m.FragmentCode = "void material(inout MaterialInputs material) {\n    material.baseColor = texture(materialParams_video, getUV0());\n}\n"

	gles, err := New(m, mobileGL1).Generate(target.StageFragment, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(gles.Source, "#extension GL_OES_EGL_image_external_essl3 : require"))
	assert.Contains(t, gles.Source, "uniform samplerExternalOES materialParams_video;")

	vk, err := New(m, vulkan).Generate(target.StageFragment, 0)
	require.NoError(t, err)
	assert.Contains(t, vk.Source, "layout(binding = 2, set = 2) uniform sampler2D materialParams_video;")
	assert.NotContains(t, vk.Source, "samplerExternalOES")
	assert.NotContains(t, vk.Source, "GL_OES_EGL_image_external")
}

func TestGenerate_Compute(t *testing.T) {
	a := New(computeMaterial(), vulkan)
	p, err := a.Generate(target.StageCompute, material.DirectionalLighting)
	require.NoError(t, err)

	assert.Equal(t, BodyCompute, p.Body)
	assert.Equal(t, material.Variant(0), p.Variant)
	assert.Contains(t, p.Source, "layout(local_size_x = 64, local_size_y = 1, local_size_z = 1) in;\n")
	assert.Contains(t, p.Source, "layout(binding = 1, set = 2, std430) buffer Particles {\n    vec4 positions[];\n} particles;\n")
	assert.Contains(t, p.Source, defaultCompute)
	assertOrdered(t, p.Source, "struct ComputeInputs {", defaultCompute, "// Compute main")

	particles, ok := p.Lookup("Particles")
	require.True(t, ok)
	assert.Equal(t, Binding{Kind: BindingStorage, Name: "Particles", Set: material.SetPerMaterial, Binding: 1, Index: 0}, particles)

	_, _, err = a.GeneratePair(0)
	assert.ErrorIs(t, err, ErrStageNotSupported)
}

func TestGenerate_PostProcess(t *testing.T) {
	vs, fs, err := New(postProcessMaterial(), vulkan).GeneratePair(material.DirectionalLighting)
	require.NoError(t, err)

	assert.Equal(t, BodyPostProcess, fs.Body)
	assert.Contains(t, vs.Source, defaultPostProcessVertex)
	assert.Contains(t, fs.Source, defaultPostProcess)
	assert.Contains(t, fs.Source, "layout(input_attachment_index = 0, set = 2, binding = 1) uniform mediump subpassInput materialParams_color;")
	assert.NotContains(t, vs.Source, "subpassInput")
	assert.NotContains(t, fs.Source, "ObjectUniforms")

	sp, ok := fs.Lookup("color")
	require.True(t, ok)
	assert.Equal(t, BindingSubpass, sp.Kind)

	gl, err := New(postProcessMaterial(), mobileGL2).Generate(target.StageFragment, 0)
	require.NoError(t, err)
	assert.NotContains(t, gl.Source, "subpassInput")
}

func TestGenerate_SurfaceComputeStage(t *testing.T) {
	_, err := New(litMaterial(), vulkan).Generate(target.StageCompute, 0)
	assert.ErrorIs(t, err, ErrStageNotSupported)
}

func TestProgram_String(t *testing.T) {
	p, err := New(litMaterial(), vulkan).Generate(target.StageFragment, material.DirectionalLighting)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.String(), "fragment/DIR lit (vulkan, "))
}
