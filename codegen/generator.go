// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"

	"github.com/gogpu/matgen/internal/logx"
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/resolve"
	"github.com/gogpu/matgen/target"
)

// Generator emits shader fragments for one target configuration.
type Generator struct {
	cfg   target.Config
	alloc Allocator

	// flattened maps plain uniform names to the block that declared them.
	flattened map[string]string
}

// New returns a Generator with all counters at zero.
// It panics with target.ErrUnresolvedTarget if cfg.API is target.APIAll.
func New(cfg target.Config) *Generator {
	return NewFrom(cfg, Allocator{})
}

// NewFrom returns a Generator whose counters continue from baseline.
func NewFrom(cfg target.Config, baseline Allocator) *Generator {
	cfg.MustBeConcrete()
	return &Generator{cfg: cfg, alloc: baseline}
}

// Config returns the target configuration.
func (g *Generator) Config() target.Config { return g.cfg }

// Allocator returns a copy of the current counters.
func (g *Generator) Allocator() Allocator { return g.alloc }

// NextSamplerBinding allocates a sampler binding index.
func (g *Generator) NextSamplerBinding() uint32 { return g.alloc.NextSampler() }

// NextUniformBinding allocates a uniform block binding index.
func (g *Generator) NextUniformBinding() uint32 { return g.alloc.NextUniformBlock() }

// NextStorageBinding allocates a storage block binding index.
func (g *Generator) NextStorageBinding() uint32 { return g.alloc.NextStorageBlock() }

// bindingLayout returns the layout qualifier locating a resource, or "" when
// the target cannot express one. Descriptor-set APIs use the caller's binding
// inside set; OpenGL uses the allocated index.
func (g *Generator) bindingLayout(set material.DescriptorSet, binding, allocated uint32) string {
	if g.cfg.UsesDescriptorSets() {
		return fmt.Sprintf("binding = %d, set = %d", binding, set)
	}
	if g.cfg.SupportsExplicitBinding() {
		return fmt.Sprintf("binding = %d", allocated)
	}
	return ""
}

// checkIdentifier panics if name cannot be declared in GLSL.
func checkIdentifier(what, name string) {
	if name == "" {
		target.Fail(target.ErrReservedIdentifier, "%s has no name", what)
	}
	if resolve.IsReserved(name) {
		target.Fail(target.ErrReservedIdentifier, "%s %q is a GLSL reserved word", what, name)
	}
}

func (g *Generator) debug(msg string, keyvals ...any) {
	logx.With("codegen").Debug(msg, keyvals...)
}
