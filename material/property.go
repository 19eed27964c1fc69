// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

import (
	"fmt"
	"strings"
)

// Property is a material output the user may override.
type Property uint8

const (
	PropertyBaseColor Property = iota
	PropertyRoughness
	PropertyMetallic
	PropertyReflectance
	PropertyAmbientOcclusion
	PropertyClearCoat
	PropertyClearCoatRoughness
	PropertyClearCoatNormal
	PropertyAnisotropy
	PropertyAnisotropyDirection
	PropertyThickness
	PropertySubsurfacePower
	PropertySubsurfaceColor
	PropertySheenColor
	PropertySheenRoughness
	PropertySpecularColor
	PropertyGlossiness
	PropertyEmissive
	PropertyNormal
	PropertyPostLightingColor
	PropertyClipSpaceTransform
	PropertyAbsorption
	PropertyTransmission
	PropertyIOR
	PropertyMicroThickness
	PropertyBentNormal
	PropertySpecularFactor
	PropertySpecularColorFactor

	propertyCount
)

var propertyNames = []string{
	"base_color", "roughness", "metallic", "reflectance", "ambient_occlusion",
	"clear_coat", "clear_coat_roughness", "clear_coat_normal", "anisotropy",
	"anisotropy_direction", "thickness", "subsurface_power", "subsurface_color",
	"sheen_color", "sheen_roughness", "specular_color", "glossiness", "emissive",
	"normal", "post_lighting_color", "clip_space_transform", "absorption",
	"transmission", "ior", "micro_thickness", "bent_normal", "specular_factor",
	"specular_color_factor",
}

func (p Property) String() string { return enumName(propertyNames, p) }

// Properties returns every property in declaration order.
func Properties() []Property {
	out := make([]Property, propertyCount)
	for i := range out {
		out[i] = Property(i)
	}
	return out
}

// ParseProperty parses a property name such as "baseColor" or "base_color".
func ParseProperty(s string) (Property, error) {
	return parseEnum[Property]("property", propertyNames, []byte(snakeCase(s)))
}

// snakeCase turns "clearCoatRoughness" into "clear_coat_roughness".
func snakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
			prevLower = false
		} else {
			prevLower = r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PropertySet records which properties the material writes.
type PropertySet uint32

// Set adds p to the set.
func (s PropertySet) Set(p Property) PropertySet { return s | 1<<p }

// Has reports whether p is in the set.
func (s PropertySet) Has(p Property) bool { return s&(1<<p) != 0 }

// String lists the set properties.
func (s PropertySet) String() string {
	var names []string
	for _, p := range Properties() {
		if s.Has(p) {
			names = append(names, p.String())
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(names, " "))
}
