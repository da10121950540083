// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package routes

import (
	"fmt"
	"sort"

	"github.com/routelens/routelens/internal/parser"
	"github.com/routelens/routelens/pkg/types"
)

// matchTree is the structural matching strategy. It parses the source with
// tree-sitter, walks call expressions, and resolves each first argument with
// the path expression resolver. Calls whose path cannot be statically
// resolved are skipped, not emitted.
func matchTree(text string) (routes []types.ParsedRoute, err error) {
	defer func() {
		if r := recover(); r != nil {
			routes = nil
			err = fmt.Errorf("structural route matching failed: %v", r)
		}
	}()

	p := parser.NewTypeScriptParser()
	defer p.Close()

	pf, err := p.ParseSource("", text)
	if err != nil {
		return nil, err
	}
	defer pf.Close()

	content := pf.Content

	for _, call := range parser.FindCallExpressions(pf.RootNode) {
		callee := call.ChildByFieldName("function")
		if callee == nil && call.ChildCount() > 0 {
			callee = call.Child(0)
		}
		if callee == nil || callee.Type() != "member_expression" {
			continue
		}

		objNode, propNode := parser.GetMemberExpressionNodes(callee)
		if objNode == nil || propNode == nil || objNode.Type() != "identifier" {
			continue
		}

		method := propNode.Content(content)
		if !httpMethods[method] {
			continue
		}

		args := parser.GetCallArguments(call)
		if len(args) == 0 {
			continue
		}

		path, ok := resolvePathExpression(args[0], pf.RootNode, content, 0)
		if !ok {
			continue
		}

		routes = append(routes, types.ParsedRoute{
			Method:         method,
			Path:           path,
			CallStartIndex: int(objNode.StartByte()),
		})
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].CallStartIndex < routes[j].CallStartIndex
	})

	return routes, nil
}
