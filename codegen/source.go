// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"
	"strings"
)

// Source accumulates generated shader text. The zero value is ready to use.
type Source struct {
	out    strings.Builder
	indent int
}

// Line writes one indented line. Arguments are formatted with fmt when present.
//
//nolint:goprintffuncname
func (s *Source) Line(format string, args ...any) *Source {
	for i := 0; i < s.indent; i++ {
		s.out.WriteString("    ")
	}
	if len(args) == 0 {
		s.out.WriteString(format)
	} else {
		fmt.Fprintf(&s.out, format, args...)
	}
	s.out.WriteByte('\n')
	return s
}

// Raw appends text verbatim, adding a trailing newline if it lacks one.
func (s *Source) Raw(text string) *Source {
	if text == "" {
		return s
	}
	s.out.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		s.out.WriteByte('\n')
	}
	return s
}

// Separator writes an empty line.
func (s *Source) Separator() *Source {
	s.out.WriteByte('\n')
	return s
}

func (s *Source) pushIndent() { s.indent++ }

func (s *Source) popIndent() {
	if s.indent > 0 {
		s.indent--
	}
}

// Len returns the number of bytes written so far.
func (s *Source) Len() int { return s.out.Len() }

// String returns the accumulated text.
func (s *Source) String() string { return s.out.String() }

// join concatenates the non-empty tokens with single spaces.
func join(tokens ...string) string {
	var b strings.Builder
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	return b.String()
}
