// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types provides core data structures for route detection and analysis.
package types

// ParsedRoute represents a detected HTTP route definition in source text.
type ParsedRoute struct {
	// Method is the lowercase HTTP verb (get, post, put, delete, patch, options, head)
	Method string `json:"method" yaml:"method"`

	// Path is the resolved route path. Unresolvable template interpolations
	// are rendered as ${name} or ${...} placeholders, never dropped.
	Path string `json:"path" yaml:"path"`

	// CallStartIndex is the byte offset of the receiver identifier in the
	// source text (the "a" of "app.get(...)").
	CallStartIndex int `json:"callStartIndex" yaml:"callStartIndex"`

	// SourceFile is the file where this route was found, when known.
	SourceFile string `json:"sourceFile,omitempty" yaml:"sourceFile,omitempty"`

	// SourceLine is the 1-based line number of the call, when known.
	SourceLine int `json:"sourceLine,omitempty" yaml:"sourceLine,omitempty"`

	// Label is a human-readable operation name derived from method and path.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// CommentRange is a half-open [Start, End) byte interval over source text
// covering a line or block comment.
type CommentRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether the byte offset lies inside the range.
func (r CommentRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// JSDocExample is a request example extracted from a JSDoc @example section,
// paired with the route definition that follows its comment block.
type JSDocExample struct {
	// Method is the uppercase HTTP method keyword from the example line.
	Method string `json:"method" yaml:"method"`

	// JSONBody is the raw brace-balanced payload text, trimmed. It is not
	// guaranteed to be valid JSON.
	JSONBody string `json:"jsonBody" yaml:"jsonBody"`

	// MethodStartIndex is the byte offset of the method keyword in the
	// original (undecorated) source text.
	MethodStartIndex int `json:"methodStartIndex" yaml:"methodStartIndex"`

	// RoutePath is the resolved path of the associated route.
	RoutePath string `json:"routePath" yaml:"routePath"`

	// RouteMethod is the lowercase method of the associated route.
	RouteMethod string `json:"routeMethod" yaml:"routeMethod"`
}

// FormFieldSpec describes one declared body field of a route's input form.
type FormFieldSpec struct {
	// Name is the field name, unique within a route's inferred body.
	Name string `json:"name" yaml:"name"`

	// Type is the rendered declared type text (e.g. "string", "File[]").
	Type string `json:"type" yaml:"type"`

	// IsArrayLike reports whether the declared type is an array shape.
	IsArrayLike bool `json:"isArrayLike" yaml:"isArrayLike"`
}

// Invocation describes one resolved request invocation. It is constructed
// per user action and consumed immediately by argument building.
type Invocation struct {
	// Method is the HTTP method to send.
	Method string `json:"method" yaml:"method"`

	// Path is the request path after parameter substitution.
	Path string `json:"path" yaml:"path"`

	// Data is the optional request body.
	Data string `json:"data,omitempty" yaml:"data,omitempty"`

	// Headers are optional "Name: value" header strings.
	Headers []string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// AppEntryFile is the optional application entry file passed to the
	// external request tool.
	AppEntryFile string `json:"appEntryFile,omitempty" yaml:"appEntryFile,omitempty"`
}
