// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package routes

import (
	"regexp"

	"github.com/routelens/routelens/pkg/types"
)

// routeCallRegex matches receiver.method('<path>', ...) calls with a literal
// first argument. The leading group captures the boundary character before
// the receiver identifier so the emitted offset points at the identifier
// itself, not at preceding whitespace.
var routeCallRegex = regexp.MustCompile(
	`(^|[^A-Za-z0-9_$.])([A-Za-z_$][A-Za-z0-9_$]*)\s*\.\s*` +
		`(get|post|put|delete|patch|options|head)\s*\(\s*` +
		`('(?:[^'\\` + "\n" + `]|\\.)*'|"(?:[^"\\` + "\n" + `]|\\.)*"|` + "`[^`]*`" + `)`)

// matchRegex is the fallback matching strategy. It only recognizes calls
// whose first argument is a quoted literal; dynamic path expressions are
// skipped. Backtick literals keep any ${name} spans verbatim.
func matchRegex(text string) []types.ParsedRoute {
	var routes []types.ParsedRoute

	for _, m := range routeCallRegex.FindAllStringSubmatchIndex(text, -1) {
		// Submatch layout: 1 boundary, 2 receiver, 3 method, 4 path literal.
		receiverStart := m[4]
		method := text[m[6]:m[7]]
		rawPath := text[m[8]:m[9]]

		path := rawPath
		if len(path) >= 2 {
			path = path[1 : len(path)-1]
		}

		routes = append(routes, types.ParsedRoute{
			Method:         method,
			Path:           path,
			CallStartIndex: receiverStart,
		})
	}

	return routes
}
