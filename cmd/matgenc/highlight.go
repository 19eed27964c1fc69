// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

type colorMode uint8

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

func parseColorMode(s string) (colorMode, error) {
	switch s {
	case "auto", "":
		return colorAuto, nil
	case "always":
		return colorAlways, nil
	case "never":
		return colorNever, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// enabled reports whether output written to w should be highlighted.
// In auto mode only terminals with colour support qualify.
func (c colorMode) enabled(w io.Writer) bool {
	switch c {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// formatterName picks the chroma terminal formatter for a colour profile.
func formatterName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	default:
		return "terminal"
	}
}

// highlightGLSL writes src to w with GLSL syntax highlighting.
func highlightGLSL(w io.Writer, src string) error {
	lexer := lexers.Get("glsl")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	profile := termenv.TrueColor
	if f, ok := w.(*os.File); ok {
		profile = termenv.NewOutput(f).ColorProfile()
	}
	formatter := formatters.Get(formatterName(profile))

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return err
	}
	return formatter.Format(w, styles.Get("monokai"), it)
}
