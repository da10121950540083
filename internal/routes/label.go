// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package routes

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/routelens/routelens/internal/util"
)

// RouteLabel derives a human-readable operation name from a method and path,
// e.g. ("get", "/users/:id") -> "getUsersByid". Labels are used as scan
// output and as the name component of persisted-value store keys.
func RouteLabel(method, path string) string {
	path = paramRegex.ReplaceAllString(path, "By$1")
	path = strings.ReplaceAll(path, "/", " ")
	path = strings.TrimSpace(path)

	titleCaser := cases.Title(language.English)

	var sb strings.Builder
	sb.WriteString(titleCaser.String(strings.ToLower(method)))

	for _, word := range strings.Fields(path) {
		sb.WriteString(titleCaser.String(strings.ToLower(word)))
	}

	return util.ToLowerCamelCase(sb.String())
}
