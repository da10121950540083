// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package request builds argument vectors for the external request tool.
package request

import (
	"strings"

	"github.com/routelens/routelens/pkg/types"
)

// BuildArgs renders an invocation as the external tool's argument vector:
//
//	request [entryFile] -P <path> -X <METHOD> [-d <data>] [-H <header>]... [--watch] [extra...]
func BuildArgs(inv types.Invocation, watch bool, extra []string) []string {
	args := []string{"request"}

	if inv.AppEntryFile != "" {
		args = append(args, inv.AppEntryFile)
	}

	args = append(args, "-P", inv.Path)
	args = append(args, "-X", strings.ToUpper(inv.Method))

	if inv.Data != "" {
		args = append(args, "-d", inv.Data)
	}

	for _, header := range inv.Headers {
		args = append(args, "-H", header)
	}

	if watch {
		args = append(args, "--watch")
	}

	args = append(args, extra...)

	return args
}
