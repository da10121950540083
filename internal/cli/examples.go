// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/internal/config"
	"github.com/routelens/routelens/internal/jsdoc"
	"github.com/routelens/routelens/internal/scanner"
	"github.com/routelens/routelens/pkg/types"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [paths...]",
	Short: "Extract documented request examples from JSDoc blocks",
	Long: `Extract request examples declared in JSDoc @example sections.

An example section contains an HTTP method keyword optionally followed by a
JSON payload; each example is paired with the route definition following its
comment block when the methods match.

Example:
  routelens examples                   # Extract from current directory
  routelens examples src/index.ts      # Extract from a single file
  routelens examples -f yaml           # Machine-readable output`,
	RunE: runExamples,
}

func runExamples(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}

	sc := scanner.New(scanner.Config{
		IncludePatterns: cfg.Source.Include,
		ExcludePatterns: cfg.Source.Exclude,
	})

	files, err := sc.ScanPaths(paths)
	if err != nil {
		return fmt.Errorf("failed to scan sources: %w", err)
	}

	var extracted []types.JSDocExample
	for _, f := range files {
		printVerbose("Scanning %s", f.Path)
		extracted = append(extracted, jsdoc.Extract(string(f.Content))...)
	}

	outputFormat := outputFormatOr(cfg.Format)
	if outputFormat != "text" {
		out, err := renderStructured(extracted, outputFormat)
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	}

	if len(extracted) == 0 {
		printInfo("No examples found")
		return nil
	}
	for _, ex := range extracted {
		printInfo("%s %s", ex.Method, ex.RoutePath)
		if ex.JSONBody != "" {
			printInfo("  %s", ex.JSONBody)
		}
	}

	return nil
}
