// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package routes

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/routelens/routelens/internal/parser"
)

// maxResolveDepth bounds identifier chains and self-referential declarations.
const maxResolveDepth = 16

// resolvePathExpression statically evaluates a path argument expression.
//
// Supported shapes: string literals, template literals (interpolations render
// as ${name} or ${...} placeholders), identifiers resolved to the nearest
// preceding const declaration, and binary + concatenation. Everything else is
// unresolvable and reported as false.
func resolvePathExpression(node *sitter.Node, root *sitter.Node, content []byte, depth int) (string, bool) {
	if node == nil || depth > maxResolveDepth {
		return "", false
	}

	switch node.Type() {
	case "string":
		value, ok := parser.ExtractStringLiteral(node, content)
		return value, ok

	case "template_string":
		return renderTemplate(node, content), true

	case "identifier":
		name := node.Content(content)
		value := nearestPrecedingConst(root, content, name, int(node.StartByte()))
		if value == nil {
			return "", false
		}
		return resolvePathExpression(value, root, content, depth+1)

	case "binary_expression":
		op := node.ChildByFieldName("operator")
		if op == nil || op.Content(content) != "+" {
			return "", false
		}
		left, ok := resolvePathExpression(node.ChildByFieldName("left"), root, content, depth+1)
		if !ok {
			return "", false
		}
		right, ok := resolvePathExpression(node.ChildByFieldName("right"), root, content, depth+1)
		if !ok {
			return "", false
		}
		return left + right, true

	case "parenthesized_expression":
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() != "(" && child.Type() != ")" {
				return resolvePathExpression(child, root, content, depth+1)
			}
		}
		return "", false

	default:
		return "", false
	}
}

// renderTemplate renders a template_string as a path pattern. Literal
// fragments and escape sequences are kept verbatim as written in source;
// each interpolation renders as ${name} when the interpolated expression is
// a simple identifier, otherwise ${...}.
func renderTemplate(node *sitter.Node, content []byte) string {
	var sb strings.Builder

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "string_fragment", "escape_sequence":
			sb.WriteString(child.Content(content))
		case "template_substitution":
			sb.WriteString(renderSubstitution(child, content))
		}
	}

	return sb.String()
}

// renderSubstitution renders one ${...} span of a template literal.
func renderSubstitution(node *sitter.Node, content []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "${" || child.Type() == "}" {
			continue
		}
		if child.Type() == "identifier" {
			return "${" + child.Content(content) + "}"
		}
		return "${...}"
	}
	return "${...}"
}

// nearestPrecedingConst finds the value expression of the const declaration
// of name closest before the use offset. This is a best-effort full-tree
// search, not scope-aware resolution; shadowed declarations resolve to
// whichever matching declaration starts nearest before the use site.
func nearestPrecedingConst(root *sitter.Node, content []byte, name string, useOffset int) *sitter.Node {
	var best *sitter.Node
	bestStart := -1

	parser.Walk(root, func(node *sitter.Node) bool {
		if node.Type() != "lexical_declaration" {
			return true
		}
		if !isConstDeclaration(node) {
			return false
		}

		start := int(node.StartByte())
		if start >= useOffset {
			return false
		}

		for i := 0; i < int(node.ChildCount()); i++ {
			decl := node.Child(i)
			if decl.Type() != "variable_declarator" {
				continue
			}
			nameNode := decl.ChildByFieldName("name")
			if nameNode == nil || nameNode.Type() != "identifier" || nameNode.Content(content) != name {
				continue
			}
			value := decl.ChildByFieldName("value")
			if value != nil && start > bestStart {
				best = value
				bestStart = start
			}
		}
		return false
	})

	return best
}

// isConstDeclaration reports whether a lexical_declaration uses the const keyword.
func isConstDeclaration(node *sitter.Node) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		switch node.Child(i).Type() {
		case "const":
			return true
		case "let", "var":
			return false
		}
	}
	return false
}
