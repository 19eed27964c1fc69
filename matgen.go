// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package matgen generates GLSL shader source from material descriptors.
//
// A material descriptor names the parameters, samplers, storage buffers,
// interpolants and hand-written code of a material. matgen turns it into the
// complete text of each shader stage for one target: an OpenGL or OpenGL ES
// dialect, or GLSL with Vulkan semantics destined for a SPIR-V compiler (used
// for Vulkan, Metal and WebGPU).
//
// Example usage:
//
//	m, err := matgen.LoadMaterial("brick.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vs, fs, err := matgen.GeneratePair(m, material.DirectionalLighting, matgen.DefaultOptions())
//
// For finer control use the shader package directly:
//
//	a := shader.New(m, target.Resolve(target.APIOpenGL, target.ShaderModelMobile, target.FeatureLevel1))
//	p, err := a.Generate(target.StageFragment, material.DirectionalLighting|material.Fog)
//
// Lower level emission operations live in the codegen package.
package matgen

import (
	"fmt"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/shader"
	"github.com/gogpu/matgen/target"
)

// Options selects the targets programs are generated for.
type Options struct {
	// API is the graphics API. target.APIAll is only accepted by GenerateAll.
	API          target.API
	Model        target.ShaderModel
	FeatureLevel target.FeatureLevel
}

// DefaultOptions returns options for desktop Vulkan at feature level 1.
func DefaultOptions() Options {
	return Options{
		API:          target.APIVulkan,
		Model:        target.ShaderModelDesktop,
		FeatureLevel: target.FeatureLevel1,
	}
}

// Config resolves the options into a target configuration.
func (o Options) Config() target.Config {
	return target.Resolve(o.API, o.Model, o.FeatureLevel)
}

// Targets returns one configuration per API the options cover.
// APIAll expands to every concrete API, or to OpenGL alone at feature level 0.
func (o Options) Targets() []target.Config {
	if o.API != target.APIAll {
		return []target.Config{o.Config()}
	}
	apis := target.Concrete()
	if o.FeatureLevel == target.FeatureLevel0 {
		apis = []target.API{target.APIOpenGL}
	}
	out := make([]target.Config, 0, len(apis))
	for _, api := range apis {
		out = append(out, target.Resolve(api, o.Model, o.FeatureLevel))
	}
	return out
}

// LoadMaterial reads a TOML (.toml) or YAML (.yaml, .yml) descriptor file.
func LoadMaterial(path string) (*material.Material, error) {
	return material.LoadFile(path)
}

// Stages returns the stages a material of domain d is made of.
func Stages(d material.Domain) []target.Stage {
	if d == material.DomainCompute {
		return []target.Stage{target.StageCompute}
	}
	return []target.Stage{target.StageVertex, target.StageFragment}
}

// GenerateProgram generates one stage of m.
// It panics if opts.API is target.APIAll.
func GenerateProgram(m *material.Material, stage target.Stage, variant material.Variant, opts Options) (*shader.Program, error) {
	p, err := shader.New(m, opts.Config()).Generate(stage, variant)
	if err != nil {
		return nil, fmt.Errorf("matgen: %s: %w", m.Name, err)
	}
	return p, nil
}

// GeneratePair generates the vertex and fragment stages of m. The two
// programs agree on every resource binding.
func GeneratePair(m *material.Material, variant material.Variant, opts Options) (vertex, fragment *shader.Program, err error) {
	vertex, fragment, err = shader.New(m, opts.Config()).GeneratePair(variant)
	if err != nil {
		return nil, nil, fmt.Errorf("matgen: %s: %w", m.Name, err)
	}
	return vertex, fragment, nil
}

// GenerateAll generates every stage of m for every target of opts, target
// by target in the order of Options.Targets.
func GenerateAll(m *material.Material, variant material.Variant, opts Options) ([]*shader.Program, error) {
	var programs []*shader.Program
	for _, cfg := range opts.Targets() {
		a := shader.New(m, cfg)
		for _, stage := range Stages(m.Domain) {
			p, err := a.Generate(stage, variant)
			if err != nil {
				return nil, fmt.Errorf("matgen: %s for %s: %w", m.Name, cfg.API, err)
			}
			programs = append(programs, p)
		}
	}
	return programs, nil
}
