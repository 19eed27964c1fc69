// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"github.com/gogpu/matgen/material"
)

// Engine array limits. Their symbols size the light and bone arrays.
const (
	MaxLights = 64
	MaxBones  = 256

	maxLightsSymbol = "CONFIG_MAX_LIGHTS"
	maxBonesSymbol  = "CONFIG_MAX_BONES"
)

// Bindings of engine resources inside their descriptor sets.
const (
	bindingFrameUniforms  uint32 = 0
	bindingLightsUniforms uint32 = 1
	bindingShadowUniforms uint32 = 2
	bindingShadowMap      uint8  = 3
	bindingIBLSpecular    uint8  = 4
	bindingSSR            uint8  = 5

	bindingObjectUniforms uint32 = 0
	bindingBonesUniforms  uint32 = 1

	bindingMaterialParams uint32 = 0
)

// lightSamplersName prefixes the per-view sampler uniforms: light_shadowMap, ...
const lightSamplersName = "Light"

var frameUniforms = material.BufferLayout{
	Name:             "FrameUniforms",
	DefaultPrecision: material.PrecisionHigh,
	Fields: []material.Field{
		{Name: "viewFromWorldMatrix", Type: material.TypeMat4},
		{Name: "worldFromViewMatrix", Type: material.TypeMat4},
		{Name: "clipFromViewMatrix", Type: material.TypeMat4},
		{Name: "clipFromWorldMatrix", Type: material.TypeMat4},
		{Name: "cameraPosition", Type: material.TypeFloat3},
		{Name: "time", Type: material.TypeFloat},
		{Name: "resolution", Type: material.TypeFloat4},
		{Name: "exposure", Type: material.TypeFloat},
		{Name: "lightColorIntensity", Type: material.TypeFloat4},
		{Name: "lightDirection", Type: material.TypeFloat3},
		{Name: "iblLuminance", Type: material.TypeFloat},
		{Name: "lightCount", Type: material.TypeInt},
		{Name: "ssrDistance", Type: material.TypeFloat},
		{Name: "fogStart", Type: material.TypeFloat},
		{Name: "fogDensity", Type: material.TypeFloat},
		{Name: "fogHeightFalloff", Type: material.TypeFloat},
		{Name: "fogMaxOpacity", Type: material.TypeFloat},
		{Name: "fogColor", Type: material.TypeFloat3, Precision: material.PrecisionMedium},
	},
}

var objectUniforms = material.BufferLayout{
	Name:             "ObjectUniforms",
	DefaultPrecision: material.PrecisionHigh,
	Fields: []material.Field{
		{Name: "worldFromModelMatrix", Type: material.TypeMat4},
		{Name: "worldFromModelNormalMatrix", Type: material.TypeMat3},
	},
}

var bonesUniforms = material.BufferLayout{
	Name: "BonesUniforms",
	Fields: []material.Field{
		{Name: "bones", Type: material.TypeStruct, StructName: "BoneData", SizeName: maxBonesSymbol},
	},
}

var lightsUniforms = material.BufferLayout{
	Name: "LightsUniforms",
	Fields: []material.Field{
		{Name: "lights", Type: material.TypeMat4, Precision: material.PrecisionHigh, SizeName: maxLightsSymbol},
	},
}

var shadowUniforms = material.BufferLayout{
	Name:             "ShadowUniforms",
	DefaultPrecision: material.PrecisionHigh,
	Fields: []material.Field{
		{Name: "lightFromWorldMatrix", Type: material.TypeMat4},
		{Name: "shadowBias", Type: material.TypeFloat},
	},
}

// lightSamplers returns the per-view samplers variant v reads.
func lightSamplers(v material.Variant) *material.SamplerBlock {
	block := &material.SamplerBlock{Name: lightSamplersName}
	if v.Has(material.ShadowReceiver) {
		format := material.FormatShadow
		if v.Has(material.VSM) {
			format = material.FormatFloat
		}
		block.Samplers = append(block.Samplers, material.SamplerInfo{
			Name: "shadowMap", Binding: bindingShadowMap, Type: material.Sampler2DArray,
			Format: format, Precision: material.PrecisionMedium,
		})
	}
	if v.IsLit() {
		block.Samplers = append(block.Samplers, material.SamplerInfo{
			Name: "iblSpecular", Binding: bindingIBLSpecular, Type: material.SamplerCubemap,
			Precision: material.PrecisionMedium,
		})
	}
	if v.Has(material.SSR) {
		block.Samplers = append(block.Samplers, material.SamplerInfo{
			Name: "ssr", Binding: bindingSSR, Type: material.Sampler2D,
			Precision: material.PrecisionMedium,
		})
	}
	return block
}

// declareEngineResources declares the engine blocks and samplers of the
// material domain. Both stages of a pair pass the same variant, so this is
// the one place engine indices are allocated.
func (s *session) declareEngineResources(v material.Variant) {
	s.uniforms(material.SetPerView, bindingFrameUniforms, &frameUniforms)
	if s.material.Domain != material.DomainSurface {
		return
	}

	s.uniforms(material.SetPerRenderable, bindingObjectUniforms, &objectUniforms)
	if v.Has(material.Skinning) {
		s.uniforms(material.SetPerRenderable, bindingBonesUniforms, &bonesUniforms)
	}
	if v.Has(material.DynamicLighting) {
		s.uniforms(material.SetPerView, bindingLightsUniforms, &lightsUniforms)
	}
	if v.Has(material.ShadowReceiver) {
		s.uniforms(material.SetPerView, bindingShadowUniforms, &shadowUniforms)
	}
	s.samplers(material.SetPerView, lightSamplers(v))
}
