// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package material

import (
	"fmt"
	"strings"
)

// enumName returns names[v] or a numeric fallback for values outside the table.
func enumName[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

// parseEnum looks text up in names. Matching ignores case and treats '-' as '_'.
func parseEnum[T ~uint8](kind string, names []string, text []byte) (T, error) {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(text))), "-", "_")
	for i, name := range names {
		if name == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, string(text))
}
