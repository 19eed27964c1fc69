// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package resolve maps descriptor-level enums to GLSL tokens.
//
// Every function here is pure: the same inputs always produce the same
// string, and nothing is cached or mutated. Inputs outside an enum, or
// combinations a tier cannot express, are contract violations and panic with
// a *target.Error rather than producing malformed source.
//
// Precision follows a layered default chain:
//
//	field precision -> block default -> stage default -> dialect default (high)
//
// Boolean types never carry a qualifier and always resolve to
// material.PrecisionNone.
package resolve
