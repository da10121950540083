// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package request

import (
	"fmt"
	"os"
	"path/filepath"
)

// entryCandidates are conventional application entry files, probed in order.
var entryCandidates = []string{
	"src/index.ts",
	"src/index.js",
	"src/app.ts",
	"index.ts",
	"index.js",
	"app.ts",
}

// ResolveEntryFile returns the application entry file for the project.
// A configured path wins; otherwise conventional locations under root are
// probed. It fails fast when no root is available or nothing matches.
func ResolveEntryFile(root, configured string) (string, error) {
	if configured != "" {
		path := configured
		if !filepath.IsAbs(path) && root != "" {
			path = filepath.Join(root, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("configured entry file %s not found: %w", configured, err)
		}
		return path, nil
	}

	if root == "" {
		return "", fmt.Errorf("no project root resolvable")
	}

	for _, candidate := range entryCandidates {
		path := filepath.Join(root, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no application entry file found under %s", root)
}
