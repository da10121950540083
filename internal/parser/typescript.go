// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package parser provides TypeScript/JavaScript parsing for route analysis.
package parser

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// TypeScriptParser provides TypeScript/JavaScript AST parsing using tree-sitter.
type TypeScriptParser struct {
	parser *sitter.Parser
}

// NewTypeScriptParser creates a new TypeScript parser.
func NewTypeScriptParser() *TypeScriptParser {
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())
	return &TypeScriptParser{
		parser: parser,
	}
}

// ParsedFile represents a parsed TypeScript source file.
type ParsedFile struct {
	// Path is the file path
	Path string

	// Content is the original source content
	Content []byte

	// Tree is the tree-sitter parse tree
	Tree *sitter.Tree

	// RootNode is the root node of the AST
	RootNode *sitter.Node
}

// ParseSource parses TypeScript source code from a string.
func (p *TypeScriptParser) ParseSource(filename string, source string) (*ParsedFile, error) {
	return p.Parse(filename, []byte(source))
}

// Parse parses TypeScript source code from bytes.
func (p *TypeScriptParser) Parse(filename string, content []byte) (*ParsedFile, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TypeScript: %w", err)
	}

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("failed to get root node")
	}

	return &ParsedFile{
		Path:     filename,
		Content:  content,
		Tree:     tree,
		RootNode: rootNode,
	}, nil
}

// ParseFile parses a TypeScript source file from disk.
func (p *TypeScriptParser) ParseFile(path string) (*ParsedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return p.Parse(path, content)
}

// Walk walks all nodes in the tree, calling fn for each node.
// If fn returns false, it stops recursing into that node's children.
func Walk(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !fn(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(i), fn)
	}
}

// FindCallExpressions finds all call_expression nodes in the AST.
func FindCallExpressions(rootNode *sitter.Node) []*sitter.Node {
	var calls []*sitter.Node

	Walk(rootNode, func(node *sitter.Node) bool {
		if node.Type() == "call_expression" {
			calls = append(calls, node)
		}
		return true
	})

	return calls
}

// GetCallArguments returns the argument expressions from a call_expression,
// skipping punctuation.
func GetCallArguments(node *sitter.Node) []*sitter.Node {
	var args []*sitter.Node

	if node.Type() != "call_expression" {
		return args
	}

	argNode := node.ChildByFieldName("arguments")
	if argNode == nil {
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() == "arguments" {
				argNode = child
				break
			}
		}
	}

	if argNode == nil {
		return args
	}

	for i := 0; i < int(argNode.ChildCount()); i++ {
		child := argNode.Child(i)
		if child.Type() != "," && child.Type() != "(" && child.Type() != ")" {
			args = append(args, child)
		}
	}

	return args
}

// GetMemberExpressionNodes returns the object and property nodes of a
// member_expression.
func GetMemberExpressionNodes(node *sitter.Node) (object, property *sitter.Node) {
	if node.Type() != "member_expression" {
		return nil, nil
	}

	object = node.ChildByFieldName("object")
	if object == nil && node.ChildCount() > 0 {
		object = node.Child(0)
	}

	property = node.ChildByFieldName("property")
	if property == nil && node.ChildCount() > 2 {
		property = node.Child(2)
	}

	return object, property
}

// GetMemberExpressionParts returns the object and property text of a
// member_expression.
func GetMemberExpressionParts(node *sitter.Node, content []byte) (object, property string) {
	objNode, propNode := GetMemberExpressionNodes(node)
	if objNode != nil {
		object = objNode.Content(content)
	}
	if propNode != nil {
		property = propNode.Content(content)
	}
	return object, property
}

// ExtractStringLiteral extracts the unquoted value from a string or
// template_string node.
func ExtractStringLiteral(node *sitter.Node, content []byte) (string, bool) {
	if node == nil {
		return "", false
	}

	nodeType := node.Type()
	if nodeType != "string" && nodeType != "template_string" && nodeType != "string_fragment" {
		return "", false
	}

	text := node.Content(content)

	if len(text) >= 2 {
		if (text[0] == '"' && text[len(text)-1] == '"') ||
			(text[0] == '\'' && text[len(text)-1] == '\'') ||
			(text[0] == '`' && text[len(text)-1] == '`') {
			return text[1 : len(text)-1], true
		}
	}

	return text, true
}

// Close cleans up parser resources.
func (p *TypeScriptParser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// Close cleans up the parsed file resources.
func (pf *ParsedFile) Close() {
	if pf.Tree != nil {
		pf.Tree.Close()
	}
}
