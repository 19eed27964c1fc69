// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"github.com/gogpu/matgen/codegen"
	"github.com/gogpu/matgen/internal/logx"
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

// Phase is a step of program assembly.
type Phase uint8

const (
	PhaseProlog Phase = iota
	PhaseDeclarations
	PhaseBody
	PhaseEpilog
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseProlog:
		return "prolog"
	case PhaseDeclarations:
		return "declarations"
	case PhaseBody:
		return "body"
	case PhaseEpilog:
		return "epilog"
	default:
		return "unknown"
	}
}

// session is the state of one program being assembled.
type session struct {
	gen     *codegen.Generator
	out     codegen.Source
	phase   Phase
	started bool

	material *material.Material
	stage    target.Stage
	variant  material.Variant
	bindings []Binding
}

func newSession(gen *codegen.Generator, m *material.Material, stage target.Stage, variant material.Variant) *session {
	return &session{gen: gen, material: m, stage: stage, variant: variant}
}

// enter moves the session to phase p. Text already written stays; going back
// to an earlier phase is a contract violation.
func (s *session) enter(p Phase) {
	if s.started && p < s.phase {
		target.Fail(target.ErrPhaseOrder, "cannot enter %s after %s", p, s.phase)
	}
	if s.started && p == s.phase {
		return
	}
	s.phase = p
	s.started = true
	logx.With("shader").Debug("phase", "stage", s.stage, "phase", p, "offset", s.out.Len())
}
