// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command matgenc generates GLSL shader source from a material descriptor.
//
// Usage:
//
//	matgenc [options] <material.toml|material.yaml>
//
// Examples:
//
//	matgenc brick.toml                              # Vulkan vertex and fragment to stdout
//	matgenc -api opengl -model mobile -level 0 brick.toml
//	matgenc -api all -variant DIR,SRE,FOG -o out brick.toml
//	matgenc -watch -color always brick.toml         # Regenerate on every save
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/gogpu/matgen"
	"github.com/gogpu/matgen/internal/logx"
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/shader"
	"github.com/gogpu/matgen/target"
)

var (
	output   = flag.String("o", "", "output directory (default: stdout)")
	api      = flag.String("api", "vulkan", "target API: opengl, vulkan, metal, webgpu or all")
	model    = flag.String("model", "desktop", "shader model: mobile or desktop")
	level    = flag.String("level", "1", "feature level: 0 to 3")
	stage    = flag.String("stage", "", "generate only this stage: vertex, fragment or compute")
	variant  = flag.String("variant", "", "variant flags, e.g. DIR|SRE|FOG")
	bindings = flag.Bool("bindings", false, "prefix each program with its binding report")
	color    = flag.String("color", "auto", "highlight output: auto, always or never")
	watch    = flag.Bool("watch", false, "regenerate whenever the descriptor changes")
	verbose  = flag.Bool("v", false, "log capability fallbacks")
	version  = flag.Bool("version", false, "print version")
)

const matgenVersion = "0.1.0-dev"

// job is one parsed command line.
type job struct {
	path    string
	opts    matgen.Options
	stages  []target.Stage
	variant material.Variant
	outDir  string
	report  bool
	color   colorMode
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("matgenc version %s\n", matgenVersion)
		return
	}
	switch {
	case *verbose:
		logx.SetLevel(log.DebugLevel)
	case *watch, *output != "":
		logx.SetLevel(log.InfoLevel)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no material file specified")
		usage()
		os.Exit(1)
	}

	j, err := parseJob(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := j.run(os.Stdout); err != nil {
		logx.Logger().Error("generation failed", "material", j.path, "err", err)
		if !*watch {
			os.Exit(1)
		}
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = watchFile(ctx, j.path, func() {
		if err := j.run(os.Stdout); err != nil {
			logx.Logger().Error("generation failed", "material", j.path, "err", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", j.path, err)
		os.Exit(1)
	}
}

func parseJob(path string) (*job, error) {
	a, err := target.ParseAPI(*api)
	if err != nil {
		return nil, err
	}
	m, err := target.ParseShaderModel(*model)
	if err != nil {
		return nil, err
	}
	fl, err := target.ParseFeatureLevel(*level)
	if err != nil {
		return nil, err
	}
	v, err := material.ParseVariant(*variant)
	if err != nil {
		return nil, err
	}
	mode, err := parseColorMode(*color)
	if err != nil {
		return nil, err
	}

	j := &job{
		path:    path,
		opts:    matgen.Options{API: a, Model: m, FeatureLevel: fl},
		variant: v,
		outDir:  *output,
		report:  *bindings,
		color:   mode,
	}
	if *stage != "" {
		s, err := target.ParseStage(*stage)
		if err != nil {
			return nil, err
		}
		j.stages = []target.Stage{s}
	}
	return j, nil
}

// run loads the descriptor and writes every requested program.
func (j *job) run(stdout io.Writer) error {
	m, err := matgen.LoadMaterial(j.path)
	if err != nil {
		return err
	}
	programs, err := j.generate(m)
	if err != nil {
		return err
	}

	if j.outDir != "" {
		return j.writeFiles(m, programs)
	}
	highlight := j.color.enabled(stdout)
	for _, p := range programs {
		text := j.render(p)
		if highlight {
			err = highlightGLSL(stdout, text)
		} else {
			_, err = io.WriteString(stdout, text)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}
	return nil
}

// generate runs the assembler over every target and stage of the job.
// Contract violations are reported as errors instead of crashing the command.
func (j *job) generate(m *material.Material) (programs []*shader.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			var te *target.Error
			if e, ok := r.(error); ok && errors.As(e, &te) {
				err = fmt.Errorf("%s: %w", m.Name, te)
				return
			}
			panic(r)
		}
	}()

	if len(j.stages) == 0 {
		return matgen.GenerateAll(m, j.variant, j.opts)
	}
	for _, cfg := range j.opts.Targets() {
		a := shader.New(m, cfg)
		for _, s := range j.stages {
			p, err := a.Generate(s, j.variant)
			if err != nil {
				return nil, err
			}
			programs = append(programs, p)
		}
	}
	return programs, nil
}

// render returns the text written for p: an optional binding report as
// comments, then the source.
func (j *job) render(p *shader.Program) string {
	text := fmt.Sprintf("// %s\n", p)
	if j.report {
		for _, b := range p.Bindings {
			text += fmt.Sprintf("// %-12s %-24s set=%d binding=%d index=%d", b.Kind, b.Name, b.Set, b.Binding, b.Index)
			if p.Target.API == target.APIMetal {
				text += fmt.Sprintf(" buffer=%d", b.MetalBuffer)
			}
			text += "\n"
		}
	}
	return text + p.Source + "\n"
}

func (j *job) writeFiles(m *material.Material, programs []*shader.Program) error {
	if err := os.MkdirAll(j.outDir, 0o755); err != nil {
		return err
	}
	for _, p := range programs {
		path := filepath.Join(j.outDir, programFileName(m.Name, p))
		if err := os.WriteFile(path, []byte(j.render(p)), 0o644); err != nil { //nolint:gosec // G306: generated sources are world readable
			return err
		}
		logx.With("matgenc").Info("wrote", "file", path, "bytes", len(p.Source))
	}
	return nil
}

// programFileName returns e.g. "brick.vulkan.fl1.frag".
func programFileName(name string, p *shader.Program) string {
	ext := map[target.Stage]string{
		target.StageVertex:   "vert",
		target.StageFragment: "frag",
		target.StageCompute:  "comp",
	}[p.Stage]
	return fmt.Sprintf("%s.%s.%s.%s", name, p.Target.API, p.Target.FeatureLevel, ext)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: matgenc [options] <material.toml|material.yaml>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  matgenc brick.toml                          Vulkan programs to stdout\n")
	fmt.Fprintf(os.Stderr, "  matgenc -api opengl -level 0 brick.toml     OpenGL ES 2.0 class programs\n")
	fmt.Fprintf(os.Stderr, "  matgenc -api all -o out brick.toml          Every API, one file per program\n")
	fmt.Fprintf(os.Stderr, "  matgenc -watch brick.toml                   Regenerate on change\n")
}
