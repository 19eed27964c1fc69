// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"

	"github.com/gogpu/matgen/codegen"
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

// BindingKind is the kind of resource a Binding locates.
type BindingKind uint8

const (
	BindingUniform BindingKind = iota
	BindingStorage
	BindingSampler
	BindingSubpass
	BindingPushConstant
)

// String returns the kind name.
func (k BindingKind) String() string {
	switch k {
	case BindingUniform:
		return "uniform"
	case BindingStorage:
		return "storage"
	case BindingSampler:
		return "sampler"
	case BindingSubpass:
		return "subpass"
	case BindingPushConstant:
		return "push_constant"
	default:
		return "unknown"
	}
}

// Binding locates one resource declared by a program.
type Binding struct {
	Kind BindingKind
	// Name is the block type name or the sampler uniform name.
	Name string
	Set  material.DescriptorSet
	// Binding is the binding inside Set, as declared on descriptor-set APIs.
	Binding uint32
	// Index is the index handed out by the allocator namespace of Kind.
	// OpenGL declarations use it as their binding.
	Index uint32
	// MetalBuffer is the [[buffer(n)]] carrying the resource on Metal.
	// It is zero for other APIs.
	MetalBuffer uint32
}

// Program is one generated shader.
type Program struct {
	Stage   target.Stage
	Variant material.Variant
	Target  target.Config
	Body    Body
	Source  string

	// Bindings lists resources in declaration order.
	Bindings []Binding
	// Counters is the allocator state once the program is complete.
	Counters codegen.Counters
	// DynamicOffsetBuffer is the Metal buffer holding dynamic offsets.
	// It is zero for other APIs.
	DynamicOffsetBuffer uint32
}

// String describes the program for logs.
func (p *Program) String() string {
	return fmt.Sprintf("%s/%s %s (%s, %d bytes)", p.Stage, p.Variant, p.Body, p.Target.API, len(p.Source))
}

// Lookup returns the binding named name.
func (p *Program) Lookup(name string) (Binding, bool) {
	for _, b := range p.Bindings {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// record appends a binding to the report of the session.
func (s *session) record(kind BindingKind, name string, set material.DescriptorSet, binding, index uint32) {
	b := Binding{Kind: kind, Name: name, Set: set, Binding: binding, Index: index}
	if s.gen.Config().API == target.APIMetal {
		if kind == BindingPushConstant {
			b.MetalBuffer = codegen.MetalPushConstantBufferIndex
		} else {
			b.MetalBuffer = codegen.MetalBufferIndex(set)
		}
	}
	s.bindings = append(s.bindings, b)
}

func (s *session) program(source string, body Body) *Program {
	p := &Program{
		Stage:    s.stage,
		Variant:  s.variant,
		Target:   s.gen.Config(),
		Body:     body,
		Source:   source,
		Bindings: s.bindings,
		Counters: s.gen.Allocator().Counters(),
	}
	if p.Target.API == target.APIMetal {
		p.DynamicOffsetBuffer = codegen.MetalDynamicOffsetBinding
	}
	return p
}
