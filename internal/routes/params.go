// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package routes

import (
	"net/url"
	"regexp"
)

// paramRegex matches path parameters in the format :param.
var paramRegex = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// ExtractParamNames returns the named :param placeholders in the path,
// deduplicated, in first-occurrence order.
func ExtractParamNames(path string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, m := range paramRegex.FindAllStringSubmatch(path, -1) {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}

// SubstituteParams replaces every :name placeholder with the percent-encoded
// value for that name. Repeated placeholders of the same name all receive the
// same value; names missing from values substitute as empty string.
func SubstituteParams(path string, values map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(path, func(m string) string {
		return url.PathEscape(values[m[1:]])
	})
}
