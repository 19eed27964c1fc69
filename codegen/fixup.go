// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package codegen

import (
	"regexp"
	"strings"

	"github.com/gogpu/matgen/material"
	"github.com/gogpu/matgen/target"
)

const (
	extensionExternalESSL3 = "GL_OES_EGL_image_external_essl3"
	extensionExternal      = "GL_OES_EGL_image_external"
)

// externalSamplerExtension returns the extension that declares samplerExternalOES.
func externalSamplerExtension(level target.FeatureLevel) string {
	if level >= target.FeatureLevel1 {
		return extensionExternalESSL3
	}
	return extensionExternal
}

var externalExtensionLine = regexp.MustCompile(`(?m)^[ \t]*#extension[ \t]+GL_OES_EGL_image_external(_essl3)?[ \t]*:[^\n]*\n?`)

// FixupExternalSamplers rewrites the external sampler declarations of src
// for cfg. It works on text because src may contain hand-written code.
//
// When cfg supports external samplers, sampler2D declarations of block's
// external samplers become samplerExternalOES and the extension is required
// right after #version. Otherwise samplerExternalOES declarations become
// sampler2D and the extension lines are removed. Text that already matches
// is returned unchanged.
func FixupExternalSamplers(src string, block *material.SamplerBlock, cfg target.Config) string {
	if !block.HasExternalSamplers() {
		return src
	}

	from, to := "samplerExternalOES", "sampler2D"
	if cfg.SupportsExternalSamplers() {
		from, to = to, from
	}
	for _, info := range block.Samplers {
		if info.Type != material.SamplerExternal {
			continue
		}
		re := regexp.MustCompile(`\b` + from + `(\s+)` + regexp.QuoteMeta(block.UniformName(info)) + `\b`)
		src = re.ReplaceAllString(src, to+"${1}"+block.UniformName(info))
	}

	if !cfg.SupportsExternalSamplers() {
		return externalExtensionLine.ReplaceAllString(src, "")
	}
	return ensureExtension(src, externalSamplerExtension(cfg.FeatureLevel))
}

// ensureExtension inserts "#extension name : require" after the #version
// line unless an #extension line for name already exists.
func ensureExtension(src, name string) string {
	for _, line := range strings.Split(src, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "#extension" && fields[1] == name {
			return src
		}
	}

	directive := "#extension " + name + " : require\n"
	start := strings.Index(src, "#version")
	if start < 0 {
		return directive + src
	}
	eol := strings.IndexByte(src[start:], '\n')
	if eol < 0 {
		return src + "\n" + directive
	}
	at := start + eol + 1
	return src[:at] + directive + src[at:]
}
