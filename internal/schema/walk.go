// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/routelens/routelens/pkg/types"
)

// typeRef is a type node together with the source of its declaring file,
// so that alias resolution can cross files.
type typeRef struct {
	node    *sitter.Node
	content []byte
}

// text renders the type as its declared source text.
func (r typeRef) text() string {
	return strings.TrimSpace(r.node.Content(r.content))
}

// findSchemaArg searches a type expression for the framework root generic
// and returns its second type argument. Union and intersection branches are
// searched recursively; named types resolve through the program with a
// visited set guarding against self-referential declarations.
func findSchemaArg(p Program, ref typeRef, visited map[string]bool) (typeRef, bool) {
	if ref.node == nil {
		return typeRef{}, false
	}

	switch ref.node.Type() {
	case "generic_type":
		name := ref.node.ChildByFieldName("name")
		if name != nil && name.Content(ref.content) == frameworkRootType {
			if typeArgs := ref.node.ChildByFieldName("type_arguments"); typeArgs != nil {
				args := typeArgumentList(typeArgs)
				if len(args) >= 2 {
					return typeRef{node: args[1], content: ref.content}, true
				}
			}
		}
		return typeRef{}, false

	case "union_type", "intersection_type":
		for i := 0; i < int(ref.node.ChildCount()); i++ {
			child := ref.node.Child(i)
			if child.Type() == "|" || child.Type() == "&" {
				continue
			}
			if found, ok := findSchemaArg(p, typeRef{node: child, content: ref.content}, visited); ok {
				return found, true
			}
		}
		return typeRef{}, false

	case "parenthesized_type":
		for i := 0; i < int(ref.node.ChildCount()); i++ {
			child := ref.node.Child(i)
			if child.Type() != "(" && child.Type() != ")" {
				return findSchemaArg(p, typeRef{node: child, content: ref.content}, visited)
			}
		}
		return typeRef{}, false

	case "type_identifier":
		name := ref.node.Content(ref.content)
		if visited[name] {
			return typeRef{}, false
		}
		visited[name] = true
		decl, ok := p.LookupTypeDecl(name)
		if !ok {
			return typeRef{}, false
		}
		return findSchemaArg(p, typeRef{node: decl.Node, content: decl.Content}, visited)

	default:
		return typeRef{}, false
	}
}

// lookupProperty returns the value types of the property named key within a
// type, searching union and intersection branches and resolving named types.
// Several results are possible when multiple branches declare the key.
func lookupProperty(p Program, ref typeRef, key string, visited map[string]bool) []typeRef {
	if ref.node == nil {
		return nil
	}

	switch ref.node.Type() {
	case "object_type", "interface_body":
		return objectTypeProperty(ref, key)

	case "union_type", "intersection_type":
		var results []typeRef
		for i := 0; i < int(ref.node.ChildCount()); i++ {
			child := ref.node.Child(i)
			if child.Type() == "|" || child.Type() == "&" {
				continue
			}
			results = append(results, lookupProperty(p, typeRef{node: child, content: ref.content}, key, visited)...)
		}
		return results

	case "parenthesized_type":
		for i := 0; i < int(ref.node.ChildCount()); i++ {
			child := ref.node.Child(i)
			if child.Type() != "(" && child.Type() != ")" {
				return lookupProperty(p, typeRef{node: child, content: ref.content}, key, visited)
			}
		}
		return nil

	case "type_identifier":
		name := ref.node.Content(ref.content)
		if visited[name] {
			return nil
		}
		visited[name] = true
		decl, ok := p.LookupTypeDecl(name)
		if !ok {
			return nil
		}
		return lookupProperty(p, typeRef{node: decl.Node, content: decl.Content}, key, visited)

	default:
		return nil
	}
}

// objectTypeProperty finds the value types of key among an object type's own
// property signatures.
func objectTypeProperty(ref typeRef, key string) []typeRef {
	var results []typeRef

	for i := 0; i < int(ref.node.ChildCount()); i++ {
		prop := ref.node.Child(i)
		if prop.Type() != "property_signature" {
			continue
		}

		name, ok := propertyKeyName(prop, ref.content)
		if !ok || name != key {
			continue
		}

		if annotation := prop.ChildByFieldName("type"); annotation != nil {
			if valueType := annotationType(annotation); valueType != nil {
				results = append(results, typeRef{node: valueType, content: ref.content})
			}
		}
	}

	return results
}

// propertyKeyName returns the property key of a property_signature,
// unquoting string keys.
func propertyKeyName(prop *sitter.Node, content []byte) (string, bool) {
	name := prop.ChildByFieldName("name")
	if name == nil {
		return "", false
	}

	text := name.Content(content)
	if name.Type() == "string" && len(text) >= 2 {
		return text[1 : len(text)-1], true
	}
	return text, true
}

// expandObjectTypes resolves a type to its concrete object type branches,
// following named types and splitting unions and intersections.
func expandObjectTypes(p Program, ref typeRef, visited map[string]bool) []typeRef {
	if ref.node == nil {
		return nil
	}

	switch ref.node.Type() {
	case "object_type", "interface_body":
		return []typeRef{ref}

	case "union_type", "intersection_type", "parenthesized_type":
		var results []typeRef
		for i := 0; i < int(ref.node.ChildCount()); i++ {
			child := ref.node.Child(i)
			switch child.Type() {
			case "|", "&", "(", ")":
			default:
				results = append(results, expandObjectTypes(p, typeRef{node: child, content: ref.content}, visited)...)
			}
		}
		return results

	case "type_identifier":
		name := ref.node.Content(ref.content)
		if visited[name] {
			return nil
		}
		visited[name] = true
		decl, ok := p.LookupTypeDecl(name)
		if !ok {
			return nil
		}
		return expandObjectTypes(p, typeRef{node: decl.Node, content: decl.Content}, visited)

	default:
		return nil
	}
}

// objectFields extracts the own property signatures of an object type as
// form field specs.
func objectFields(ref typeRef) []types.FormFieldSpec {
	if ref.node == nil {
		return nil
	}
	if ref.node.Type() != "object_type" && ref.node.Type() != "interface_body" {
		return nil
	}

	var fields []types.FormFieldSpec

	for i := 0; i < int(ref.node.ChildCount()); i++ {
		prop := ref.node.Child(i)
		if prop.Type() != "property_signature" {
			continue
		}

		name, ok := propertyKeyName(prop, ref.content)
		if !ok {
			continue
		}

		typeText := ""
		if annotation := prop.ChildByFieldName("type"); annotation != nil {
			if valueType := annotationType(annotation); valueType != nil {
				typeText = typeRef{node: valueType, content: ref.content}.text()
			}
		}

		fields = append(fields, types.FormFieldSpec{
			Name:        name,
			Type:        typeText,
			IsArrayLike: isArrayLikeType(typeText),
		})
	}

	return fields
}
