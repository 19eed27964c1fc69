// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

import "strings"

// DescriptorSet identifies a binding set.
type DescriptorSet uint8

const (
	SetPerView DescriptorSet = iota
	SetPerRenderable
	SetPerMaterial
)

var descriptorSetNames = []string{"per_view", "per_renderable", "per_material"}

func (s DescriptorSet) String() string { return enumName(descriptorSetNames, s) }

// SamplerType is the dimensionality of a sampler.
type SamplerType uint8

const (
	Sampler2D SamplerType = iota
	Sampler2DArray
	SamplerCubemap
	// SamplerExternal is an external (video / camera) image.
	SamplerExternal
	Sampler3D
	SamplerCubemapArray
)

var samplerTypeNames = []string{"sampler_2d", "sampler_2d_array", "sampler_cubemap", "sampler_external", "sampler_3d", "sampler_cubemap_array"}

func (t SamplerType) String() string { return enumName(samplerTypeNames, t) }

// UnmarshalText implements encoding.TextUnmarshaler. The "sampler_" prefix is optional.
func (t *SamplerType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if !strings.HasPrefix(s, "sampler") {
		s = "sampler_" + s
	}
	v, err := parseEnum[SamplerType]("sampler type", samplerTypeNames, []byte(s))
	if err == nil {
		*t = v
	}
	return err
}

// SamplerFormat is the component format read through a sampler.
type SamplerFormat uint8

const (
	FormatFloat SamplerFormat = iota
	FormatInt
	FormatUint
	FormatShadow
)

var samplerFormatNames = []string{"float", "int", "uint", "shadow"}

func (f SamplerFormat) String() string { return enumName(samplerFormatNames, f) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *SamplerFormat) UnmarshalText(text []byte) error {
	v, err := parseEnum[SamplerFormat]("sampler format", samplerFormatNames, text)
	if err == nil {
		*f = v
	}
	return err
}

// SamplerInfo describes one sampler of a block.
type SamplerInfo struct {
	Name string
	// Binding is the binding inside the block's descriptor set.
	Binding     uint8
	Type        SamplerType
	Format      SamplerFormat
	Multisample bool
	Precision   Precision
}

// SamplerBlock is an ordered, named list of samplers.
type SamplerBlock struct {
	Name     string
	Samplers []SamplerInfo
}

// UniformName returns the declared name of s: "<block>_<sampler>", block name lower-cased first.
func (b *SamplerBlock) UniformName(s SamplerInfo) string {
	if b.Name == "" {
		return s.Name
	}
	return strings.ToLower(b.Name[:1]) + b.Name[1:] + "_" + s.Name
}

// HasExternalSamplers reports whether any sampler is external.
func (b *SamplerBlock) HasExternalSamplers() bool {
	for _, s := range b.Samplers {
		if s.Type == SamplerExternal {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the block declares no samplers.
func (b *SamplerBlock) IsEmpty() bool {
	return len(b.Samplers) == 0
}
