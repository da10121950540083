// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package routes locates HTTP route definitions in TypeScript/JavaScript
// source text and resolves their path expressions.
package routes

import (
	"strings"

	"github.com/routelens/routelens/internal/parser"
	"github.com/routelens/routelens/pkg/types"
)

// httpMethods is the set of recognized route-defining method names.
// Matching is case-sensitive on the method name as written in source.
var httpMethods = map[string]bool{
	"get":     true,
	"post":    true,
	"put":     true,
	"delete":  true,
	"patch":   true,
	"options": true,
	"head":    true,
}

// MatchOptions controls route matching behavior.
type MatchOptions struct {
	// ExcludeComments skips calls whose start offset lies inside a line or
	// block comment. Defaults to true via DefaultMatchOptions.
	ExcludeComments bool

	// SourceFile, when set, is recorded on every emitted route.
	SourceFile string
}

// DefaultMatchOptions returns the default matching options.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{ExcludeComments: true}
}

// Match finds route-defining calls of the form receiver.method(pathExpr, ...)
// in the source text.
//
// It tries the structural tree-sitter strategy first; if that fails or yields
// no routes it falls back to the regex strategy, which recognizes literal
// paths only. The fallback keeps detection working on malformed input at the
// cost of path-resolution sophistication.
func Match(text string, opts MatchOptions) []types.ParsedRoute {
	matched, err := matchTree(text)
	if err != nil || len(matched) == 0 {
		matched = matchRegex(text)
	}

	if opts.ExcludeComments {
		ranges := parser.ScanCommentRanges(text)
		var kept []types.ParsedRoute
		for _, r := range matched {
			if !parser.InCommentRange(ranges, r.CallStartIndex) {
				kept = append(kept, r)
			}
		}
		matched = kept
	}

	for i := range matched {
		matched[i].SourceFile = opts.SourceFile
		matched[i].SourceLine = lineAt(text, matched[i].CallStartIndex)
		matched[i].Label = RouteLabel(matched[i].Method, matched[i].Path)
	}

	return matched
}

// FirstCallAfter returns the first route call whose start offset is at or
// after the given offset, without comment filtering. It reports false when
// no such call exists.
func FirstCallAfter(text string, offset int) (types.ParsedRoute, bool) {
	matched, err := matchTree(text)
	if err != nil || len(matched) == 0 {
		matched = matchRegex(text)
	}

	for _, r := range matched {
		if r.CallStartIndex >= offset {
			return r, true
		}
	}
	return types.ParsedRoute{}, false
}

// lineAt returns the 1-based line number of the byte offset.
func lineAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return 1 + strings.Count(text[:offset], "\n")
}
