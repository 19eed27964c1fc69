// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

import (
	"fmt"
	"strings"
)

// Attribute is a vertex attribute slot. The slot number is also its location.
type Attribute uint8

const (
	AttributePosition    Attribute = 0
	AttributeTangents    Attribute = 1
	AttributeColor       Attribute = 2
	AttributeUV0         Attribute = 3
	AttributeUV1         Attribute = 4
	AttributeBoneIndices Attribute = 5
	AttributeBoneWeights Attribute = 6
	AttributeCustom0     Attribute = 8
	AttributeCustom1     Attribute = 9
	AttributeCustom2     Attribute = 10
	AttributeCustom3     Attribute = 11
	AttributeCustom4     Attribute = 12
	AttributeCustom5     Attribute = 13
	AttributeCustom6     Attribute = 14
	AttributeCustom7     Attribute = 15
)

// MaxVertexAttributes is the number of attribute slots.
const MaxVertexAttributes = 16

// AttributeInfo is the fixed declaration of an attribute slot.
type AttributeInfo struct {
	Name string
	Type UniformType
}

var attributeDatabase = [MaxVertexAttributes]AttributeInfo{
	AttributePosition:    {"mesh_position", TypeFloat4},
	AttributeTangents:    {"mesh_tangents", TypeFloat4},
	AttributeColor:       {"mesh_color", TypeFloat4},
	AttributeUV0:         {"mesh_uv0", TypeFloat2},
	AttributeUV1:         {"mesh_uv1", TypeFloat2},
	AttributeBoneIndices: {"mesh_bone_indices", TypeUint4},
	AttributeBoneWeights: {"mesh_bone_weights", TypeFloat4},
	AttributeCustom0:     {"mesh_custom0", TypeFloat4},
	AttributeCustom1:     {"mesh_custom1", TypeFloat4},
	AttributeCustom2:     {"mesh_custom2", TypeFloat4},
	AttributeCustom3:     {"mesh_custom3", TypeFloat4},
	AttributeCustom4:     {"mesh_custom4", TypeFloat4},
	AttributeCustom5:     {"mesh_custom5", TypeFloat4},
	AttributeCustom6:     {"mesh_custom6", TypeFloat4},
	AttributeCustom7:     {"mesh_custom7", TypeFloat4},
}

// Info returns the declaration of a. Slot 7 is unused and has an empty name.
func (a Attribute) Info() AttributeInfo {
	if int(a) >= MaxVertexAttributes {
		return AttributeInfo{}
	}
	return attributeDatabase[a]
}

// Define returns the preprocessor symbol announcing a, e.g. HAS_ATTRIBUTE_UV0.
func (a Attribute) Define() string {
	name := strings.TrimPrefix(a.Info().Name, "mesh_")
	return "HAS_ATTRIBUTE_" + strings.ToUpper(name)
}

// AttributeBitset is the set of attributes a material reads.
type AttributeBitset uint16

// Set adds a to the set.
func (b AttributeBitset) Set(a Attribute) AttributeBitset { return b | 1<<a }

// Has reports whether a is in the set.
func (b AttributeBitset) Has(a Attribute) bool { return b&(1<<a) != 0 }

// ForEach calls fn for every attribute in the set in slot order.
func (b AttributeBitset) ForEach(fn func(Attribute)) {
	for i := 0; i < MaxVertexAttributes; i++ {
		if b.Has(Attribute(i)) {
			fn(Attribute(i))
		}
	}
}

// ParseAttribute parses an attribute name such as "uv0" or "mesh_uv0".
func ParseAttribute(s string) (Attribute, error) {
	want := "mesh_" + strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "mesh_")
	for i, info := range attributeDatabase {
		if info.Name != "" && info.Name == want {
			return Attribute(i), nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q", s)
}
