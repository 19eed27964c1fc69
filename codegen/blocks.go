// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"fmt"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/resolve"
	"github.com/gogpu/matgen/target"
)

// Uniforms declares a uniform block and allocates one uniform binding index.
// Tiers without uniform blocks get one plain uniform per field instead.
func (g *Generator) Uniforms(out *Source, stage target.Stage, set material.DescriptorSet, binding uint32, layout *material.BufferLayout) *Source {
	allocated := g.alloc.NextUniformBlock()
	return g.writeInterfaceBlock(out, stage, set, binding, allocated, layout, false)
}

// BufferInterfaceBlock declares layout as an interface block. It allocates
// one index from the namespace of layout.Target.
func (g *Generator) BufferInterfaceBlock(out *Source, stage target.Stage, set material.DescriptorSet, binding uint32, layout *material.BufferLayout) *Source {
	storage := layout.Target == material.TargetStorage
	var allocated uint32
	if storage {
		allocated = g.alloc.NextStorageBlock()
	} else {
		allocated = g.alloc.NextUniformBlock()
	}
	return g.writeInterfaceBlock(out, stage, set, binding, allocated, layout, storage)
}

// Buffers declares one storage block per layout, in order, in the material set
// starting at binding first. Tiers without storage buffers get std140 uniform
// blocks; the storage index is consumed either way.
func (g *Generator) Buffers(out *Source, layouts []material.BufferLayout, first uint32) *Source {
	for i := range layouts {
		idx := g.alloc.NextStorageBlock()
		g.writeInterfaceBlock(out, target.StageCompute, material.SetPerMaterial, first+uint32(i), idx, &layouts[i], true) //nolint:gosec // G115: buffer count is small
	}
	return out
}

func (g *Generator) writeInterfaceBlock(out *Source, stage target.Stage, set material.DescriptorSet, binding, allocated uint32, layout *material.BufferLayout, storage bool) *Source {
	if storage && !g.cfg.SupportsStorageBuffers() {
		g.debug("storage block lowered to uniform block", "block", layout.Name, "level", g.cfg.FeatureLevel)
		storage = false
	}
	if !storage && !g.cfg.SupportsUniformBlocks() {
		g.debug("uniform block lowered to plain uniforms", "block", layout.Name, "level", g.cfg.FeatureLevel)
		return g.plainUniforms(out, stage, layout)
	}

	blockName := layout.BlockName()
	instanceName := layout.InstanceName()
	checkIdentifier("block", blockName)
	checkIdentifier("block instance", instanceName)

	packing := "std140"
	keyword := "uniform"
	var qualifiers []string
	if storage {
		keyword = "buffer"
		if layout.Alignment == material.AlignmentStd430 {
			packing = "std430"
		}
		qualifiers = layout.Qualifiers.Keywords()
	}

	layoutArgs := packing
	if b := g.bindingLayout(set, binding, allocated); b != "" {
		layoutArgs = b + ", " + packing
	}
	head := append([]string{fmt.Sprintf("layout(%s)", layoutArgs)}, qualifiers...)
	head = append(head, keyword, blockName, "{")
	out.Line("%s", join(head...))

	out.pushIndent()
	g.writeFields(out, stage, layout)
	out.popIndent()
	out.Line("} %s;", instanceName)
	return out
}

func (g *Generator) writeFields(out *Source, stage target.Stage, layout *material.BufferLayout) {
	block := layout.DefaultPrecision
	stagePrecision := resolve.StagePrecision(g.cfg, stage)
	for _, f := range layout.Fields {
		checkIdentifier("field", f.Name)
		out.Line("%s;", fieldDeclaration(f, block, stagePrecision))
	}
}

// plainUniforms declares every field of layout as a standalone uniform,
// keeping names, types, order and the precision chain. All flattened blocks
// share one namespace, so a field name declared by an earlier block panics
// with target.ErrReservedIdentifier.
func (g *Generator) plainUniforms(out *Source, stage target.Stage, layout *material.BufferLayout) *Source {
	blockName := layout.BlockName()
	checkIdentifier("block", blockName)
	for _, f := range layout.Fields {
		checkIdentifier("field", f.Name)
		if owner, ok := g.flattened[f.Name]; ok {
			target.Fail(target.ErrReservedIdentifier,
				"field %q of block %s collides with block %s at feature level 0", f.Name, blockName, owner)
		}
	}
	if g.flattened == nil {
		g.flattened = make(map[string]string)
	}

	block := layout.DefaultPrecision
	stagePrecision := resolve.StagePrecision(g.cfg, stage)
	out.Line("// Uniforms from block %s", blockName)
	for _, f := range layout.Fields {
		g.flattened[f.Name] = blockName
		out.Line("uniform %s;", fieldDeclaration(f, block, stagePrecision))
	}
	return out
}

// fieldDeclaration returns "[precision] type name[size]" without a semicolon.
func fieldDeclaration(f material.Field, block, stage material.Precision) string {
	precision := ""
	if f.Type != material.TypeStruct {
		precision = resolve.FieldPrecisionQualifier(f.Type, f.Precision, block, stage)
	}
	return join(precision, resolve.FieldTypeName(f), f.Name+arraySuffix(f))
}

func arraySuffix(f material.Field) string {
	switch {
	case f.SizeName != "":
		return "[" + f.SizeName + "]"
	case f.Size > 0:
		return fmt.Sprintf("[%d]", f.Size)
	case f.IsArray:
		return "[]"
	default:
		return ""
	}
}

// Samplers declares every sampler of block in order, allocating one sampler
// index each. External samplers the target cannot declare become sampler2D.
func (g *Generator) Samplers(out *Source, set material.DescriptorSet, block *material.SamplerBlock) *Source {
	for _, info := range block.Samplers {
		allocated := g.alloc.NextSampler()
		name := block.UniformName(info)
		checkIdentifier("sampler", info.Name)

		typ := info.Type
		if typ == material.SamplerExternal && !g.cfg.SupportsExternalSamplers() {
			g.debug("external sampler declared as sampler2D", "sampler", name)
			typ = material.Sampler2D
		}
		typeName := resolve.SamplerTypeName(g.cfg, typ, info.Format, info.Multisample)
		precision := resolve.PrecisionQualifier(info.Precision)

		var layout string
		if b := g.bindingLayout(set, uint32(info.Binding), allocated); b != "" {
			layout = "layout(" + b + ")"
		}
		out.Line("%s;", join(layout, "uniform", precision, typeName, name))
	}
	return out
}

// hasSamplerType reports whether block declares a sampler of type t.
func hasSamplerType(block *material.SamplerBlock, t material.SamplerType) bool {
	for _, s := range block.Samplers {
		if s.Type == t {
			return true
		}
	}
	return false
}
