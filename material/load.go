// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a descriptor file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// ParamsBlockName names the block holding material parameters and samplers.
const ParamsBlockName = "MaterialParams"

// ErrUnknownFormat is returned for descriptor files with an unrecognized extension.
var ErrUnknownFormat = errors.New("material: unknown descriptor format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// LoadFile reads a TOML or YAML descriptor file.
func LoadFile(path string) (*Material, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("material: read %s: %w", path, err)
	}
	m, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("material: %s: %w", path, err)
	}
	return m, nil
}

// Decode decodes a descriptor document.
func Decode(data []byte, format Format) (*Material, error) {
	var doc document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return doc.material()
}

// document mirrors Material in a file-friendly shape.
type document struct {
	Name          string        `toml:"name" yaml:"name"`
	Domain        Domain        `toml:"domain" yaml:"domain"`
	Shading       Shading       `toml:"shading" yaml:"shading"`
	Interpolation Interpolation `toml:"interpolation" yaml:"interpolation"`
	VertexDomain  VertexDomain  `toml:"vertex_domain" yaml:"vertex_domain"`
	Blending      BlendingMode  `toml:"blending" yaml:"blending"`
	Quality       Quality       `toml:"quality" yaml:"quality"`

	Attributes []string `toml:"attributes" yaml:"attributes"`
	Properties []string `toml:"properties" yaml:"properties"`

	Parameters    []docField        `toml:"parameters" yaml:"parameters"`
	Samplers      []docSampler      `toml:"samplers" yaml:"samplers"`
	Buffers       []docBuffer       `toml:"buffers" yaml:"buffers"`
	Variables     []docVariable     `toml:"variables" yaml:"variables"`
	Outputs       []docOutput       `toml:"outputs" yaml:"outputs"`
	PushConstants []docPushConstant `toml:"push_constants" yaml:"push_constants"`
	Constants     []docConstant     `toml:"constants" yaml:"constants"`
	Subpass       *docSubpass       `toml:"subpass" yaml:"subpass"`
	GroupSize     []uint32          `toml:"group_size" yaml:"group_size"`

	CustomSurfaceShading bool `toml:"custom_surface_shading" yaml:"custom_surface_shading"`
	ShadowMultiplier     bool `toml:"shadow_multiplier" yaml:"shadow_multiplier"`
	FlipUV               bool `toml:"flip_uv" yaml:"flip_uv"`
	DoubleSided          bool `toml:"double_sided" yaml:"double_sided"`

	Code struct {
		Vertex   string `toml:"vertex" yaml:"vertex"`
		Fragment string `toml:"fragment" yaml:"fragment"`
		Compute  string `toml:"compute" yaml:"compute"`
	} `toml:"code" yaml:"code"`
}

type docField struct {
	Name       string      `toml:"name" yaml:"name"`
	Type       UniformType `toml:"type" yaml:"type"`
	Precision  Precision   `toml:"precision" yaml:"precision"`
	Size       uint32      `toml:"size" yaml:"size"`
	SizeName   string      `toml:"size_name" yaml:"size_name"`
	Array      bool        `toml:"array" yaml:"array"`
	StructName string      `toml:"struct" yaml:"struct"`
}

func (f docField) field() Field {
	return Field{
		Name:       f.Name,
		Type:       f.Type,
		Precision:  f.Precision,
		IsArray:    f.Array || f.Size > 0 || f.SizeName != "",
		Size:       f.Size,
		SizeName:   f.SizeName,
		StructName: f.StructName,
	}
}

type docSampler struct {
	Name        string        `toml:"name" yaml:"name"`
	Type        SamplerType   `toml:"type" yaml:"type"`
	Format      SamplerFormat `toml:"format" yaml:"format"`
	Multisample bool          `toml:"multisample" yaml:"multisample"`
	Precision   Precision     `toml:"precision" yaml:"precision"`
}

type docBuffer struct {
	Name       string     `toml:"name" yaml:"name"`
	Alignment  Alignment  `toml:"alignment" yaml:"alignment"`
	Qualifiers []string   `toml:"qualifiers" yaml:"qualifiers"`
	Fields     []docField `toml:"fields" yaml:"fields"`
}

type docVariable struct {
	Name          string        `toml:"name" yaml:"name"`
	Type          *UniformType  `toml:"type" yaml:"type"`
	Precision     Precision     `toml:"precision" yaml:"precision"`
	Interpolation Interpolation `toml:"interpolation" yaml:"interpolation"`
}

type docOutput struct {
	Name      string     `toml:"name" yaml:"name"`
	Type      OutputType `toml:"type" yaml:"type"`
	Precision Precision  `toml:"precision" yaml:"precision"`
	Location  *uint8     `toml:"location" yaml:"location"`
}

type docPushConstant struct {
	Name string       `toml:"name" yaml:"name"`
	Type ConstantType `toml:"type" yaml:"type"`
}

type docConstant struct {
	Name    string       `toml:"name" yaml:"name"`
	Type    ConstantType `toml:"type" yaml:"type"`
	Default any          `toml:"default" yaml:"default"`
}

type docSubpass struct {
	Name      string        `toml:"name" yaml:"name"`
	Index     uint8         `toml:"index" yaml:"index"`
	Binding   uint8         `toml:"binding" yaml:"binding"`
	Format    SamplerFormat `toml:"format" yaml:"format"`
	Precision Precision     `toml:"precision" yaml:"precision"`
}

func (d *document) material() (*Material, error) {
	m := &Material{
		Name:                    d.Name,
		Domain:                  d.Domain,
		Shading:                 d.Shading,
		Interpolation:           d.Interpolation,
		VertexDomain:            d.VertexDomain,
		Blending:                d.Blending,
		Quality:                 d.Quality,
		HasCustomSurfaceShading: d.CustomSurfaceShading,
		HasShadowMultiplier:     d.ShadowMultiplier,
		FlipUV:                  d.FlipUV,
		DoubleSided:             d.DoubleSided,
		VertexCode:              d.Code.Vertex,
		FragmentCode:            d.Code.Fragment,
		ComputeCode:             d.Code.Compute,
	}

	for _, name := range d.Attributes {
		a, err := ParseAttribute(name)
		if err != nil {
			return nil, err
		}
		m.Attributes = m.Attributes.Set(a)
	}
	for _, name := range d.Properties {
		p, err := ParseProperty(name)
		if err != nil {
			return nil, err
		}
		m.Properties = m.Properties.Set(p)
	}

	m.Uniforms = BufferLayout{Name: ParamsBlockName}
	for _, f := range d.Parameters {
		m.Uniforms.Fields = append(m.Uniforms.Fields, f.field())
	}
	// Binding 0 of the material set holds the parameter block.
	m.Samplers = SamplerBlock{Name: ParamsBlockName}
	for i, s := range d.Samplers {
		m.Samplers.Samplers = append(m.Samplers.Samplers, SamplerInfo{
			Name:        s.Name,
			Binding:     uint8(i + 1), //nolint:gosec // G115: sampler count is far below 256
			Type:        s.Type,
			Format:      s.Format,
			Multisample: s.Multisample,
			Precision:   s.Precision,
		})
	}

	for _, b := range d.Buffers {
		layout := BufferLayout{Name: b.Name, Target: TargetStorage, Alignment: b.Alignment}
		for _, q := range b.Qualifiers {
			bit, err := parseQualifier(q)
			if err != nil {
				return nil, err
			}
			layout.Qualifiers |= bit
		}
		for _, f := range b.Fields {
			layout.Fields = append(layout.Fields, f.field())
		}
		m.Buffers = append(m.Buffers, layout)
	}

	if len(d.Variables) > MaxCustomVariables {
		return nil, fmt.Errorf("%d variables declared, at most %d are supported", len(d.Variables), MaxCustomVariables)
	}
	for _, v := range d.Variables {
		typ := TypeFloat4
		if v.Type != nil {
			typ = *v.Type
		}
		m.Variables = append(m.Variables, CustomVariable{
			Name: v.Name, Type: typ, Precision: v.Precision, Interpolation: v.Interpolation,
		})
	}
	for i, o := range d.Outputs {
		loc := uint8(i) //nolint:gosec // G115: output count is far below 256
		if o.Location != nil {
			loc = *o.Location
		}
		m.Outputs = append(m.Outputs, Output{Name: o.Name, Type: o.Type, Precision: o.Precision, Location: loc})
	}
	for _, pc := range d.PushConstants {
		m.PushConstants = append(m.PushConstants, PushConstant(pc))
	}
	for _, c := range d.Constants {
		v, err := constantValue(c.Type, c.Default)
		if err != nil {
			return nil, fmt.Errorf("constant %q: %w", c.Name, err)
		}
		m.Constants = append(m.Constants, SpecConstant{Name: c.Name, Value: v})
	}

	if d.Subpass != nil {
		m.Subpass = Subpass{
			Name:            d.Subpass.Name,
			AttachmentIndex: d.Subpass.Index,
			Binding:         d.Subpass.Binding,
			Format:          d.Subpass.Format,
			Precision:       d.Subpass.Precision,
		}
	}
	if len(d.GroupSize) > 3 {
		return nil, fmt.Errorf("group_size has %d components, want at most 3", len(d.GroupSize))
	}
	m.GroupSize = [3]uint32{1, 1, 1}
	copy(m.GroupSize[:], d.GroupSize)
	return m, nil
}

func parseQualifier(s string) (Qualifier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, kw := range qualifierKeywords {
		if kw == s {
			return 1 << i, nil
		}
	}
	return 0, fmt.Errorf("unknown buffer qualifier %q", s)
}

// constantValue converts a decoded default. TOML yields int64, YAML int; both yield float64 and bool.
func constantValue(t ConstantType, raw any) (ConstantValue, error) {
	switch t {
	case ConstantInt:
		switch v := raw.(type) {
		case nil:
			return IntValue(0), nil
		case int64:
			return IntValue(int32(v)), nil //nolint:gosec // G115: descriptor values fit in int32
		case int:
			return IntValue(int32(v)), nil //nolint:gosec // G115: descriptor values fit in int32
		}
	case ConstantFloat:
		switch v := raw.(type) {
		case nil:
			return FloatValue(0), nil
		case float64:
			return FloatValue(float32(v)), nil
		case int64:
			return FloatValue(float32(v)), nil
		case int:
			return FloatValue(float32(v)), nil
		}
	case ConstantBool:
		switch v := raw.(type) {
		case nil:
			return BoolValue(false), nil
		case bool:
			return BoolValue(v), nil
		}
	}
	return ConstantValue{}, fmt.Errorf("default %v (%T) does not match type %s", raw, raw, t)
}
