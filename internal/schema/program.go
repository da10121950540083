// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package schema infers request body shape from declared framework schema types.
package schema

import (
	"fmt"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/routelens/routelens/internal/parser"
	"github.com/routelens/routelens/internal/scanner"
)

// Program is the type-resolution collaborator: a queryable view of a
// project's parsed sources and named type declarations. The inferencer
// depends only on this surface.
type Program interface {
	// File returns the parsed syntax tree for a source file.
	File(path string) (*parser.ParsedFile, bool)

	// LookupTypeDecl returns the declaration of a named type alias or
	// interface anywhere in the program.
	LookupTypeDecl(name string) (TypeDecl, bool)
}

// TypeDecl is a named type alias or interface declaration.
type TypeDecl struct {
	// Name is the declared type name.
	Name string

	// Node is the alias value type or the interface body.
	Node *sitter.Node

	// Content is the source of the declaring file.
	Content []byte
}

// Index is the shipped Program implementation, built by parsing project
// sources with tree-sitter. It is not a type checker; it resolves named
// types by declaration lookup only.
type Index struct {
	files map[string]*parser.ParsedFile
	decls map[string]TypeDecl
}

// BuildIndex builds a type index scoped to the enclosing project. When the
// root contains a tsconfig.json the whole project is indexed; otherwise the
// index covers only the given entry file.
func BuildIndex(root, entryFile string) (*Index, error) {
	if root != "" {
		if _, err := os.Stat(filepath.Join(root, "tsconfig.json")); err == nil {
			return buildProjectIndex(root)
		}
	}
	if entryFile == "" {
		return nil, fmt.Errorf("no project config found and no entry file given")
	}
	return BuildIndexForFiles([]string{entryFile})
}

// buildProjectIndex indexes every TypeScript/JavaScript source under root.
func buildProjectIndex(root string) (*Index, error) {
	sc := scanner.New(scanner.Config{BasePath: root})
	files, err := sc.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	idx := newIndex()
	p := parser.NewTypeScriptParser()
	defer p.Close()

	for _, f := range files {
		pf, err := p.Parse(f.Path, f.Content)
		if err != nil {
			// Skip unparseable files rather than failing the whole index.
			continue
		}
		idx.add(pf)
	}

	return idx, nil
}

// BuildIndexForFiles indexes the given source files only.
func BuildIndexForFiles(paths []string) (*Index, error) {
	idx := newIndex()
	p := parser.NewTypeScriptParser()
	defer p.Close()

	for _, path := range paths {
		pf, err := p.ParseFile(path)
		if err != nil {
			return nil, err
		}
		idx.add(pf)
	}

	return idx, nil
}

// BuildIndexFromSources indexes in-memory sources keyed by file name.
func BuildIndexFromSources(sources map[string]string) (*Index, error) {
	idx := newIndex()
	p := parser.NewTypeScriptParser()
	defer p.Close()

	for name, source := range sources {
		pf, err := p.ParseSource(name, source)
		if err != nil {
			return nil, err
		}
		idx.add(pf)
	}

	return idx, nil
}

func newIndex() *Index {
	return &Index{
		files: make(map[string]*parser.ParsedFile),
		decls: make(map[string]TypeDecl),
	}
}

// add registers a parsed file and its named type declarations.
func (idx *Index) add(pf *parser.ParsedFile) {
	idx.files[pf.Path] = pf

	parser.Walk(pf.RootNode, func(node *sitter.Node) bool {
		switch node.Type() {
		case "type_alias_declaration":
			name := node.ChildByFieldName("name")
			value := node.ChildByFieldName("value")
			if name != nil && value != nil {
				idx.decls[name.Content(pf.Content)] = TypeDecl{
					Name:    name.Content(pf.Content),
					Node:    value,
					Content: pf.Content,
				}
			}
			return false
		case "interface_declaration":
			name := node.ChildByFieldName("name")
			body := node.ChildByFieldName("body")
			if name != nil && body != nil {
				idx.decls[name.Content(pf.Content)] = TypeDecl{
					Name:    name.Content(pf.Content),
					Node:    body,
					Content: pf.Content,
				}
			}
			return false
		}
		return true
	})
}

// File returns the parsed syntax tree for a source file.
func (idx *Index) File(path string) (*parser.ParsedFile, bool) {
	pf, ok := idx.files[path]
	return pf, ok
}

// LookupTypeDecl returns the declaration of a named type.
func (idx *Index) LookupTypeDecl(name string) (TypeDecl, bool) {
	decl, ok := idx.decls[name]
	return decl, ok
}

// Close releases all parsed trees held by the index.
func (idx *Index) Close() {
	for _, pf := range idx.files {
		pf.Close()
	}
}
