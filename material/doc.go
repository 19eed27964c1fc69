// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package material holds the read-only descriptor model shader generation
// consumes: buffer layouts, sampler blocks, the material descriptor itself
// and the variant bitmask.
//
// Descriptors are built once, usually by [LoadFile] or by a material build
// pipeline, and passed by pointer into every generation call. Nothing in the
// generator mutates them.
//
// Order matters everywhere: the order of fields in a [BufferLayout], of
// samplers in a [SamplerBlock] and of push constants in a material is the
// declaration order of the emitted source.
package material
