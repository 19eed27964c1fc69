// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package matgen

import (
	"runtime"
	"testing"

	"github.com/gogpu/matgen/codegen"
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/shader"
	"github.com/gogpu/matgen/target"
)

// ---------------------------------------------------------------------------
// Materials at different complexity levels
// ---------------------------------------------------------------------------

func benchUnlit() *material.Material {
	return &material.Material{
		Name:       "flat",
		Shading:    material.ShadingUnlit,
		Attributes: material.AttributeBitset(0).Set(material.AttributePosition),
	}
}

func benchLit(b *testing.B) *material.Material {
	b.Helper()
	m, err := LoadMaterial("testdata/brick.toml")
	if err != nil {
		b.Fatalf("load failed: %v", err)
	}
	return m
}

func benchCompute(b *testing.B) *material.Material {
	b.Helper()
	m, err := LoadMaterial("testdata/particles.yaml")
	if err != nil {
		b.Fatalf("load failed: %v", err)
	}
	return m
}

type materialCase struct {
	name    string
	m       *material.Material
	variant material.Variant
}

func materialsByComplexity(b *testing.B) []materialCase {
	return []materialCase{
		{"unlit", benchUnlit(), 0},
		{"lit_directional", benchLit(b), material.DirectionalLighting},
		{"lit_full", benchLit(b), material.DirectionalLighting | material.DynamicLighting |
			material.ShadowReceiver | material.Skinning | material.Fog},
		{"depth", benchLit(b), material.Depth | material.Skinning},
	}
}

// ---------------------------------------------------------------------------
// End-to-end program generation
// ---------------------------------------------------------------------------

// BenchmarkGeneratePair benchmarks vertex plus fragment generation grouped by
// material complexity. Throughput is reported in generated bytes.
func BenchmarkGeneratePair(b *testing.B) {
	opts := DefaultOptions()
	for _, mc := range materialsByComplexity(b) {
		b.Run(mc.name, func(b *testing.B) {
			vs, fs, err := GeneratePair(mc.m, mc.variant, opts)
			if err != nil {
				b.Fatalf("generate failed: %v", err)
			}
			b.ReportAllocs()
			b.SetBytes(int64(len(vs.Source) + len(fs.Source)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				vs, fs, err = GeneratePair(mc.m, mc.variant, opts)
				if err != nil {
					b.Fatalf("generate failed: %v", err)
				}
			}
			runtime.KeepAlive(vs)
			runtime.KeepAlive(fs)
		})
	}
}

// BenchmarkGenerateCompute benchmarks a compute program with a storage buffer.
func BenchmarkGenerateCompute(b *testing.B) {
	m := benchCompute(b)
	opts := Options{API: target.APIVulkan, Model: target.ShaderModelDesktop, FeatureLevel: target.FeatureLevel2}
	b.ReportAllocs()
	b.ResetTimer()

	var p *shader.Program
	for i := 0; i < b.N; i++ {
		var err error
		p, err = GenerateProgram(m, target.StageCompute, 0, opts)
		if err != nil {
			b.Fatalf("generate failed: %v", err)
		}
	}
	runtime.KeepAlive(p)
}

// ---------------------------------------------------------------------------
// Cross-target comparison: same material for every API
// ---------------------------------------------------------------------------

// BenchmarkGenerateAllTargets benchmarks one lit fragment program per API
// and feature level.
func BenchmarkGenerateAllTargets(b *testing.B) {
	m := benchLit(b)
	variant := material.DirectionalLighting | material.ShadowReceiver | material.Fog

	for _, api := range target.Concrete() {
		for _, fl := range []target.FeatureLevel{target.FeatureLevel1, target.FeatureLevel2} {
			cfg := target.Resolve(api, target.ShaderModelMobile, fl)
			b.Run(api.String()+"/"+fl.String(), func(b *testing.B) {
				a := shader.New(m, cfg)
				b.ReportAllocs()
				b.ResetTimer()

				var p *shader.Program
				for i := 0; i < b.N; i++ {
					var err error
					p, err = a.Generate(target.StageFragment, variant)
					if err != nil {
						b.Fatalf("generate failed: %v", err)
					}
				}
				runtime.KeepAlive(p)
			})
		}
	}
}

// ---------------------------------------------------------------------------
// Individual passes
// ---------------------------------------------------------------------------

// BenchmarkFixupExternalSamplers benchmarks the post-pass on a program that
// declares an external sampler, for a target that keeps it and one that lowers it.
func BenchmarkFixupExternalSamplers(b *testing.B) {
	m := benchLit(b)
	m.Samplers.Samplers = append(m.Samplers.Samplers, material.SamplerInfo{
		Name: "video", Binding: 2, Type: material.SamplerExternal,
	})
	gles := target.Resolve(target.APIOpenGL, target.ShaderModelMobile, target.FeatureLevel1)
	vk := target.Resolve(target.APIVulkan, target.ShaderModelDesktop, target.FeatureLevel1)

	p, err := shader.New(m, gles).Generate(target.StageFragment, material.DirectionalLighting)
	if err != nil {
		b.Fatalf("generate failed: %v", err)
	}

	for name, cfg := range map[string]target.Config{"restore": gles, "lower": vk} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(p.Source)))
			b.ResetTimer()

			var out string
			for i := 0; i < b.N; i++ {
				out = codegen.FixupExternalSamplers(p.Source, &m.Samplers, cfg)
			}
			runtime.KeepAlive(out)
		})
	}
}
