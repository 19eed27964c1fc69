// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package codegen emits GLSL source fragments for materials.
//
// A Generator holds an immutable target configuration and an Allocator with
// three binding counters (samplers, uniform blocks, storage blocks). Emission
// methods append to a caller-owned Source and return it, so calls chain:
//
//	g := codegen.New(target.Resolve(target.APIVulkan, target.ShaderModelDesktop, target.FeatureLevel2))
//	var out codegen.Source
//	g.CommonProlog(&out, target.StageFragment, mat, variant)
//	g.Uniforms(&out, target.StageFragment, material.SetPerMaterial, 0, &mat.Uniforms).Separator()
//
// Capability fallbacks (plain uniforms instead of blocks, uniform blocks
// instead of storage blocks, #define instead of specialization constants)
// are taken silently and logged at debug level. Contract violations panic
// with a *target.Error.
//
// Generators are not safe for concurrent use; use one per goroutine.
package codegen
