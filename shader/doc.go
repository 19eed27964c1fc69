// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shader assembles complete shader programs from a material.
//
// An Assembler owns a material and a resolved target configuration. Each call
// to Generate runs one session through four phases, in order:
//
//   - Prolog: #version, extensions, environment defines, specialization
//     constants and default precisions.
//   - Declarations: variant and material defines, engine and material
//     interface blocks, samplers, stage inputs and outputs.
//   - Body: exactly one body routine chosen by stage, domain, shading model
//     and variant, followed by the material's own code and main().
//   - Epilog.
//
// The finished text goes through codegen.FixupExternalSamplers, so external
// samplers written by hand in the material code match the target too.
//
// Example:
//
//	a := shader.New(m, target.Resolve(target.APIVulkan, target.ShaderModelDesktop, target.FeatureLevel2))
//	vs, fs, err := a.GeneratePair(material.DirectionalLighting | material.ShadowReceiver)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(vs.Source, fs.Source)
//
// Programs generated by one Assembler start from the same allocator baseline,
// so the vertex and fragment programs of a pair declare every block and sampler
// at the same binding.
package shader
