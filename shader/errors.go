// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import "errors"

// ErrStageNotSupported is returned when a material domain has no program for
// the requested stage, such as the fragment stage of a compute material.
var ErrStageNotSupported = errors.New("stage not supported by material domain")
