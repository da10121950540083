// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/routelens/routelens/internal/parser"
	"github.com/routelens/routelens/pkg/types"
)

// frameworkRootType is the generic application type carrying the schema as
// its second type argument.
const frameworkRootType = "Hono"

// methodKeySigil is prepended to the lowercase method name to form the
// method-keyed property inside a schema type ("$get", "$post", ...).
const methodKeySigil = "$"

// InferRequest identifies the route call whose body shape should be inferred.
type InferRequest struct {
	// File is the source file containing the route call.
	File string

	// Method is the lowercase HTTP verb of the call.
	Method string

	// RoutePathLiteral is the literal first argument of the call.
	RoutePathLiteral string

	// HintLine disambiguates multiple textual matches: the call closest to
	// this 1-based line wins. Zero means no hint (first match wins).
	HintLine int
}

// Infer walks the declared schema type of the route's application instance
// and extracts the body form fields for (method, path). The second return is
// false when no usable schema could be determined; that is the caller's cue
// to fall back to free-form input, never an error.
func Infer(p Program, req InferRequest) (fields []types.FormFieldSpec, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fields = nil
			ok = false
		}
	}()

	pf, found := p.File(req.File)
	if !found {
		return nil, false
	}

	call := locateCall(pf, req)
	if call == nil {
		return nil, false
	}

	schemaType, found := receiverSchemaType(p, pf, call)
	if !found {
		return nil, false
	}

	// Chain: path literal -> $method -> input -> form.
	refs := []typeRef{schemaType}
	for _, key := range []string{req.RoutePathLiteral, methodKeySigil + req.Method, "input", "form"} {
		var next []typeRef
		for _, ref := range refs {
			next = append(next, lookupProperty(p, ref, key, make(map[string]bool))...)
		}
		if len(next) == 0 {
			return nil, false
		}
		refs = next
	}

	// Union all form types' own properties; a later branch overwrites an
	// earlier field of the same name.
	byName := make(map[string]int)
	for _, ref := range refs {
		for _, obj := range expandObjectTypes(p, ref, make(map[string]bool)) {
			for _, field := range objectFields(obj) {
				if i, seen := byName[field.Name]; seen {
					fields[i] = field
					continue
				}
				byName[field.Name] = len(fields)
				fields = append(fields, field)
			}
		}
	}

	if len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

// locateCall finds the route call matching (method, path literal) in the
// parsed file, disambiguating by proximity to the hint line.
func locateCall(pf *parser.ParsedFile, req InferRequest) *sitter.Node {
	var best *sitter.Node
	bestDistance := -1

	for _, call := range parser.FindCallExpressions(pf.RootNode) {
		callee := call.ChildByFieldName("function")
		if callee == nil && call.ChildCount() > 0 {
			callee = call.Child(0)
		}
		if callee == nil || callee.Type() != "member_expression" {
			continue
		}

		objNode, propNode := parser.GetMemberExpressionNodes(callee)
		if objNode == nil || propNode == nil || propNode.Content(pf.Content) != req.Method {
			continue
		}

		args := parser.GetCallArguments(call)
		if len(args) == 0 {
			continue
		}
		literal, isLiteral := parser.ExtractStringLiteral(args[0], pf.Content)
		if !isLiteral || literal != req.RoutePathLiteral {
			continue
		}

		if req.HintLine <= 0 {
			return call
		}

		line := int(call.StartPoint().Row) + 1
		distance := line - req.HintLine
		if distance < 0 {
			distance = -distance
		}
		if bestDistance < 0 || distance < bestDistance {
			best = call
			bestDistance = distance
		}
	}

	return best
}

// receiverSchemaType resolves the schema type argument of the call's
// receiver, preferring the initializer expression's type over a declared
// type annotation.
func receiverSchemaType(p Program, pf *parser.ParsedFile, call *sitter.Node) (typeRef, bool) {
	callee := call.ChildByFieldName("function")
	if callee == nil && call.ChildCount() > 0 {
		callee = call.Child(0)
	}
	objNode, _ := parser.GetMemberExpressionNodes(callee)
	if objNode == nil || objNode.Type() != "identifier" {
		return typeRef{}, false
	}
	receiver := objNode.Content(pf.Content)

	var fromValue, fromAnnotation *sitter.Node

	parser.Walk(pf.RootNode, func(node *sitter.Node) bool {
		if node.Type() != "variable_declarator" {
			return true
		}
		name := node.ChildByFieldName("name")
		if name == nil || name.Content(pf.Content) != receiver {
			return false
		}
		if value := node.ChildByFieldName("value"); value != nil && fromValue == nil {
			if arg := newExpressionSchemaArg(value, pf.Content); arg != nil {
				fromValue = arg
			}
		}
		if annotation := node.ChildByFieldName("type"); annotation != nil && fromAnnotation == nil {
			fromAnnotation = annotationType(annotation)
		}
		return false
	})

	if fromValue != nil {
		return typeRef{node: fromValue, content: pf.Content}, true
	}
	if fromAnnotation != nil {
		return findSchemaArg(p, typeRef{node: fromAnnotation, content: pf.Content}, make(map[string]bool))
	}
	return typeRef{}, false
}

// newExpressionSchemaArg extracts the second type argument of a
// `new Hono<Env, Schema>()` initializer.
func newExpressionSchemaArg(value *sitter.Node, content []byte) *sitter.Node {
	if value.Type() != "new_expression" {
		return nil
	}

	constructor := value.ChildByFieldName("constructor")
	if constructor == nil || constructor.Content(content) != frameworkRootType {
		return nil
	}

	typeArgs := value.ChildByFieldName("type_arguments")
	if typeArgs == nil {
		for i := 0; i < int(value.ChildCount()); i++ {
			if value.Child(i).Type() == "type_arguments" {
				typeArgs = value.Child(i)
				break
			}
		}
	}
	if typeArgs == nil {
		return nil
	}

	args := typeArgumentList(typeArgs)
	if len(args) < 2 {
		return nil
	}
	return args[1]
}

// annotationType returns the type inside a `: T` annotation.
func annotationType(annotation *sitter.Node) *sitter.Node {
	for i := 0; i < int(annotation.ChildCount()); i++ {
		child := annotation.Child(i)
		if child.Type() != ":" {
			return child
		}
	}
	return nil
}

// typeArgumentList returns the type nodes of a type_arguments clause.
func typeArgumentList(node *sitter.Node) []*sitter.Node {
	var args []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "<", ">", ",":
		default:
			args = append(args, child)
		}
	}
	return args
}

// isArrayLikeType reports whether a rendered type text has an array shape.
func isArrayLikeType(typeText string) bool {
	typeText = strings.TrimSpace(typeText)
	if strings.HasSuffix(typeText, "[]") {
		return true
	}
	return strings.HasPrefix(typeText, "Array<") || strings.HasPrefix(typeText, "ReadonlyArray<")
}
