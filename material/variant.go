// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

import (
	"fmt"
	"strings"
)

// Variant is a set of feature flags selecting optional code paths.
type Variant uint16

const (
	DirectionalLighting Variant = 1 << iota // DIR
	DynamicLighting                         // DYN
	ShadowReceiver                          // SRE
	Skinning                                // SKN
	Depth                                   // DEP
	Fog                                     // FOG
	VSM                                     // VSM
	Stereo                                  // STE
	SSR                                     // SSR
)

var variantTags = []string{"DIR", "DYN", "SRE", "SKN", "DEP", "FOG", "VSM", "STE", "SSR"}

const (
	// VertexMask holds the flags a vertex shader can observe.
	VertexMask = DirectionalLighting | ShadowReceiver | Skinning | Depth | VSM | Stereo
	// FragmentMask holds the flags a fragment shader can observe.
	FragmentMask = DirectionalLighting | DynamicLighting | ShadowReceiver | Depth | Fog | VSM | Stereo | SSR
	// DepthMask holds the flags that survive in a depth-only variant.
	DepthMask = Depth | Skinning | VSM | Stereo
)

// Has reports whether all bits of f are set.
func (v Variant) Has(f Variant) bool { return v&f == f }

// IsDepth reports whether v is a depth-only variant.
func (v Variant) IsDepth() bool { return v&Depth != 0 }

// IsLit reports whether any light source contributes.
func (v Variant) IsLit() bool { return v&(DirectionalLighting|DynamicLighting) != 0 }

// ForVertex filters v down to what a vertex shader needs.
func (v Variant) ForVertex() Variant { return v.normalized() & VertexMask }

// ForFragment filters v down to what a fragment shader needs.
func (v Variant) ForFragment() Variant { return v.normalized() & FragmentMask }

// normalized drops flags that a depth-only pass cannot use.
func (v Variant) normalized() Variant {
	if v.IsDepth() {
		return v & DepthMask
	}
	return v
}

// String returns the flags as "DIR|SRE", or "none".
func (v Variant) String() string {
	var tags []string
	for i, tag := range variantTags {
		if v&(1<<i) != 0 {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return "none"
	}
	return strings.Join(tags, "|")
}

// ParseVariant parses "DIR|SRE|FOG" (also accepting ',' and '+').
func ParseVariant(s string) (Variant, error) {
	var v Variant
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' || r == '+' || r == ' ' })
	for _, f := range fields {
		f = strings.ToUpper(f)
		if f == "NONE" {
			continue
		}
		found := false
		for i, tag := range variantTags {
			if tag == f {
				v |= 1 << i
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown variant flag %q", f)
		}
	}
	return v, nil
}
