// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import "github.com/gogpu/matgen/material"

// Metal [[buffer(n)]] indices. The Metal backend of the runtime assumes
// these exact values.
const (
	MetalPushConstantBufferIndex   uint32 = 20
	MetalDescriptorSetBindingStart uint32 = 21
	MetalDynamicOffsetBinding      uint32 = 25
)

// MetalBufferIndex returns the argument buffer index of a descriptor set.
func MetalBufferIndex(set material.DescriptorSet) uint32 {
	return MetalDescriptorSetBindingStart + uint32(set)
}
