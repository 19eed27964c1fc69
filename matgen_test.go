// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package matgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/shader"
	"github.com/gogpu/matgen/target"
)

func loadBrick(t *testing.T) *material.Material {
	t.Helper()
	m, err := LoadMaterial("testdata/brick.toml")
	require.NoError(t, err)
	return m
}

// =============================================================================
// Loading Tests
// =============================================================================

func TestLoadMaterial(t *testing.T) {
	m := loadBrick(t)
	assert.Equal(t, "brick", m.Name)
	assert.Equal(t, material.DomainSurface, m.Domain)
	assert.Equal(t, material.ShadingLit, m.Shading)
	require.Len(t, m.Samplers.Samplers, 1)
	assert.Equal(t, uint8(1), m.Samplers.Samplers[0].Binding)
	assert.Contains(t, m.FragmentCode, "materialParams.roughness")

	particles, err := LoadMaterial("testdata/particles.yaml")
	require.NoError(t, err)
	assert.Equal(t, material.DomainCompute, particles.Domain)
	assert.Equal(t, [3]uint32{64, 1, 1}, particles.GroupSize)
}

func TestLoadMaterial_Errors(t *testing.T) {
	_, err := LoadMaterial("testdata/brick.json")
	assert.ErrorIs(t, err, material.ErrUnknownFormat)

	_, err = LoadMaterial("testdata/missing.toml")
	assert.Error(t, err)
}

// =============================================================================
// Options Tests
// =============================================================================

func TestOptions_Targets(t *testing.T) {
	single := DefaultOptions().Targets()
	require.Len(t, single, 1)
	assert.Equal(t, target.Config{
		Model: target.ShaderModelDesktop, API: target.APIVulkan,
		Language: target.LanguageSPIRV, FeatureLevel: target.FeatureLevel1,
	}, single[0])

	all := Options{API: target.APIAll, Model: target.ShaderModelMobile, FeatureLevel: target.FeatureLevel2}.Targets()
	require.Len(t, all, len(target.Concrete()))
	for i, api := range target.Concrete() {
		assert.Equal(t, api, all[i].API)
		assert.Equal(t, target.ShaderModelMobile, all[i].Model)
		if api == target.APIOpenGL {
			assert.Equal(t, target.LanguageGLSL, all[i].Language)
		} else {
			assert.Equal(t, target.LanguageSPIRV, all[i].Language)
		}
	}

	level0 := Options{API: target.APIAll, Model: target.ShaderModelMobile, FeatureLevel: target.FeatureLevel0}.Targets()
	require.Len(t, level0, 1)
	assert.Equal(t, target.APIOpenGL, level0[0].API)
	assert.Equal(t, target.LanguageGLSL, level0[0].Language)
	assert.NotPanics(t, level0[0].MustBeConcrete)
}

func TestStages(t *testing.T) {
	assert.Equal(t, []target.Stage{target.StageVertex, target.StageFragment}, Stages(material.DomainSurface))
	assert.Equal(t, []target.Stage{target.StageVertex, target.StageFragment}, Stages(material.DomainPostProcess))
	assert.Equal(t, []target.Stage{target.StageCompute}, Stages(material.DomainCompute))
}

// =============================================================================
// Generation Tests
// =============================================================================

func TestGenerateProgram(t *testing.T) {
	m := loadBrick(t)
	p, err := GenerateProgram(m, target.StageFragment, material.DirectionalLighting|material.Fog, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.Source, "#version 450 core\n"))
	assert.Contains(t, p.Source, "layout(binding = 1, set = 2) uniform mediump sampler2D materialParams_albedo;")
	assert.Contains(t, p.Source, "material.roughness = materialParams.roughness;")
	assert.Equal(t, material.DirectionalLighting|material.Fog, p.Variant)
	assert.Equal(t, shader.BodyLit, p.Body)
}

func TestGenerateProgram_StageNotSupported(t *testing.T) {
	m, err := LoadMaterial("testdata/particles.yaml")
	require.NoError(t, err)

	_, err = GenerateProgram(m, target.StageVertex, 0, DefaultOptions())
	require.ErrorIs(t, err, shader.ErrStageNotSupported)
	assert.Contains(t, err.Error(), "matgen: particles")
}

func TestGenerateProgram_UnresolvedAPI(t *testing.T) {
	opts := DefaultOptions()
	opts.API = target.APIAll
	assert.Panics(t, func() {
		_, _ = GenerateProgram(loadBrick(t), target.StageVertex, 0, opts)
	})
}

func TestGeneratePair(t *testing.T) {
	opts := Options{API: target.APIOpenGL, Model: target.ShaderModelMobile, FeatureLevel: target.FeatureLevel2}
	vs, fs, err := GeneratePair(loadBrick(t), material.DirectionalLighting|material.ShadowReceiver, opts)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(vs.Source, "#version 310 es\n"))
	assert.Contains(t, vs.Source, "#define VERTEX_SHADER\n")
	assert.Contains(t, fs.Source, "#define FRAGMENT_SHADER\n")
	assert.Equal(t, vs.Bindings, fs.Bindings)
}

func TestGenerateAll(t *testing.T) {
	m := loadBrick(t)
	opts := Options{API: target.APIAll, Model: target.ShaderModelDesktop, FeatureLevel: target.FeatureLevel1}

	programs, err := GenerateAll(m, material.DirectionalLighting, opts)
	require.NoError(t, err)
	require.Len(t, programs, 2*len(target.Concrete()))

	for i, p := range programs {
		assert.Equal(t, target.Concrete()[i/2], p.Target.API)
		assert.Equal(t, Stages(m.Domain)[i%2], p.Stage)
	}
	assert.True(t, strings.HasPrefix(programs[0].Source, "#version 410 core\n"))
}

func TestGenerateAll_FeatureLevel0(t *testing.T) {
	m := loadBrick(t)
	opts := Options{API: target.APIAll, Model: target.ShaderModelMobile, FeatureLevel: target.FeatureLevel0}

	var programs []*shader.Program
	require.NotPanics(t, func() {
		var err error
		programs, err = GenerateAll(m, material.DirectionalLighting, opts)
		require.NoError(t, err)
	})
	require.Len(t, programs, 2)
	for _, p := range programs {
		assert.Equal(t, target.APIOpenGL, p.Target.API)
		assert.True(t, strings.HasPrefix(p.Source, "#version 100\n"))
	}
}

func TestGenerateAll_Compute(t *testing.T) {
	m, err := LoadMaterial("testdata/particles.yaml")
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.FeatureLevel = target.FeatureLevel2
	programs, err := GenerateAll(m, 0, opts)
	require.NoError(t, err)
	require.Len(t, programs, 1)

	src := programs[0].Source
	assert.Contains(t, src, "layout(local_size_x = 64, local_size_y = 1, local_size_z = 1) in;\n")
	assert.Contains(t, src, "layout(binding = 1, set = 2, std430) restrict buffer Particles {\n")
	assert.Contains(t, src, "particles.positions[i].w = 1.0;")
}
