// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resolve

import (
	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

// DialectPrecision is the precision assumed when nothing else in the chain is set.
const DialectPrecision = material.PrecisionHigh

// Precision resolves the effective precision of a value of type t.
func Precision(t material.UniformType, field, block, stage material.Precision) material.Precision {
	if t.IsBool() {
		return material.PrecisionNone
	}
	for _, p := range [...]material.Precision{field, block, stage} {
		if p != material.PrecisionDefault {
			return p
		}
	}
	return DialectPrecision
}

// StagePrecision returns the default float precision declared for a stage.
// Only mobile fragment shaders default to medium.
func StagePrecision(cfg target.Config, stage target.Stage) material.Precision {
	if stage == target.StageFragment && cfg.Model == target.ShaderModelMobile {
		return material.PrecisionMedium
	}
	return material.PrecisionHigh
}

// PrecisionQualifier returns the GLSL keyword for p, or "" for default and none.
func PrecisionQualifier(p material.Precision) string {
	switch p {
	case material.PrecisionLow:
		return "lowp"
	case material.PrecisionMedium:
		return "mediump"
	case material.PrecisionHigh:
		return "highp"
	default:
		return ""
	}
}

// FieldPrecisionQualifier resolves a field's precision and returns its keyword.
// A precision equal to the stage default is left implicit since the program
// prolog already declares it.
func FieldPrecisionQualifier(t material.UniformType, field, block, stage material.Precision) string {
	p := Precision(t, field, block, stage)
	if p == material.PrecisionNone || p == stage {
		return ""
	}
	return PrecisionQualifier(p)
}
