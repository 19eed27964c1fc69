// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

// variantDefines maps each variant flag to the symbol the chunks test.
var variantDefines = []struct {
	flag   material.Variant
	symbol string
}{
	{material.DirectionalLighting, "VARIANT_HAS_DIRECTIONAL_LIGHTING"},
	{material.DynamicLighting, "VARIANT_HAS_DYNAMIC_LIGHTING"},
	{material.ShadowReceiver, "VARIANT_HAS_SHADOWING"},
	{material.Skinning, "VARIANT_HAS_SKINNING"},
	{material.Depth, "VARIANT_DEPTH"},
	{material.Fog, "VARIANT_HAS_FOG"},
	{material.VSM, "VARIANT_HAS_VSM"},
	{material.Stereo, "VARIANT_HAS_STEREO"},
	{material.SSR, "VARIANT_HAS_SSR"},
}

// featureLevel0Mask holds the flags feature level 0 programs can honor.
// Shadow maps, SSR, stereo and the light and bone arrays need level 1.
const featureLevel0Mask = material.DirectionalLighting | material.Depth | material.Fog

// effectiveVariant drops the flags that m and cfg cannot use.
func effectiveVariant(m *material.Material, cfg target.Config, v material.Variant) material.Variant {
	switch m.Domain {
	case material.DomainPostProcess, material.DomainCompute:
		return 0
	}
	if !m.IsLit() {
		v &^= material.DirectionalLighting | material.DynamicLighting | material.SSR
		if !m.HasShadowMultiplier {
			v &^= material.ShadowReceiver | material.VSM
		}
	}
	if cfg.FeatureLevel == target.FeatureLevel0 {
		v &= featureLevel0Mask
	}
	return v
}

// stageVariant filters v down to the flags stage can observe.
func stageVariant(v material.Variant, stage target.Stage) material.Variant {
	switch stage {
	case target.StageVertex:
		return v.ForVertex()
	case target.StageFragment:
		return v.ForFragment()
	default:
		return 0
	}
}

// resourceVariant is the variant engine resources are declared for. It does
// not depend on the stage, so both programs of a pair declare the same set.
func resourceVariant(v material.Variant) material.Variant {
	return v.ForVertex() | v.ForFragment()
}
