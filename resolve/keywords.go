// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resolve

import "strings"

// reservedWords are GLSL words a descriptor may not use as a block, field or
// sampler name. Built-in functions are not listed; shadowing them is legal.
var reservedWords = map[string]struct{}{
	// Types
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {}, "double": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"mat2": {}, "mat3": {}, "mat4": {},
	"sampler2D": {}, "sampler3D": {}, "samplerCube": {}, "sampler2DArray": {},
	"sampler2DShadow": {}, "samplerCubeShadow": {}, "sampler2DArrayShadow": {},
	"samplerCubeArray": {}, "sampler2DMS": {}, "samplerExternalOES": {},
	"isampler2D": {}, "usampler2D": {}, "subpassInput": {},

	// Qualifiers
	"const": {}, "uniform": {}, "buffer": {}, "shared": {},
	"attribute": {}, "varying": {}, "in": {}, "out": {}, "inout": {},
	"centroid": {}, "flat": {}, "smooth": {}, "noperspective": {},
	"layout": {}, "invariant": {}, "precise": {}, "patch": {}, "sample": {},
	"coherent": {}, "volatile": {}, "restrict": {}, "readonly": {}, "writeonly": {},
	"lowp": {}, "mediump": {}, "highp": {}, "precision": {},

	// Control flow
	"break": {}, "continue": {}, "do": {}, "for": {}, "while": {},
	"if": {}, "else": {}, "switch": {}, "case": {}, "default": {},
	"discard": {}, "return": {}, "struct": {}, "true": {}, "false": {},

	// Reserved for future use
	"common": {}, "partition": {}, "active": {}, "asm": {}, "class": {},
	"union": {}, "enum": {}, "typedef": {}, "template": {}, "this": {},
	"resource": {}, "goto": {}, "inline": {}, "noinline": {}, "public": {},
	"static": {}, "extern": {}, "external": {}, "interface": {},
	"long": {}, "short": {}, "half": {}, "fixed": {}, "unsigned": {},
	"superp": {}, "input": {}, "output": {}, "filter": {},
	"sizeof": {}, "cast": {}, "namespace": {}, "using": {},

	// Entry point
	"main": {},
}

// IsReserved reports whether name cannot be declared in generated GLSL.
// Names starting with "gl_" and names containing "__" are reserved as well.
func IsReserved(name string) bool {
	if _, ok := reservedWords[name]; ok {
		return true
	}
	return strings.HasPrefix(name, "gl_") || strings.Contains(name, "__")
}
