// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/internal/config"
	"github.com/routelens/routelens/internal/routes"
	"github.com/routelens/routelens/internal/scanner"
	"github.com/routelens/routelens/pkg/types"
)

var (
	scanIncludeComments bool
	scanInclude         []string
	scanExclude         []string
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Detect HTTP route definitions in source files",
	Long: `Detect HTTP route definitions by analyzing TypeScript/JavaScript sources.

Route calls of the form receiver.method(path, ...) are located with a
structural parser; when structural analysis fails, a regex fallback keeps
literal-path detection working. Dynamic path expressions (constants,
concatenation, template interpolation) are resolved where statically
derivable.

Example:
  routelens scan                       # Scan current directory
  routelens scan src/index.ts          # Scan a single file
  routelens scan --include-comments    # Also report routes inside comments
  routelens scan -f json               # Machine-readable output`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanIncludeComments, "include-comments", false, "include route calls found inside comments")
	scanCmd.Flags().StringSliceVarP(&scanInclude, "include", "i", nil, "glob patterns to include")
	scanCmd.Flags().StringSliceVarP(&scanExclude, "exclude", "e", nil, "glob patterns to exclude")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfgFile == "" {
		if path := config.ConfigFilePath(); path != "" {
			printVerbose("Using config file %s", path)
		}
	}

	if len(scanInclude) > 0 {
		cfg.Source.Include = scanInclude
	}
	if len(scanExclude) > 0 {
		cfg.Source.Exclude = scanExclude
	}
	if scanIncludeComments {
		cfg.Analysis.ExcludeComments = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}

	detected, err := scanRoutes(cfg, paths)
	if err != nil {
		return err
	}

	outputFormat := outputFormatOr(cfg.Format)
	if outputFormat != "text" {
		out, err := renderStructured(detected, outputFormat)
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	}

	if len(detected) == 0 {
		printInfo("No routes found")
		return nil
	}
	for _, r := range detected {
		printInfo("%-7s %-40s %s:%d  (%s)", r.Method, r.Path, r.SourceFile, r.SourceLine, r.Label)
	}
	printVerbose("%d route(s) detected", len(detected))

	return nil
}

// scanRoutes discovers source files and runs route detection over each.
func scanRoutes(cfg *config.Config, paths []string) ([]types.ParsedRoute, error) {
	sc := scanner.New(scanner.Config{
		IncludePatterns: cfg.Source.Include,
		ExcludePatterns: cfg.Source.Exclude,
	})

	files, err := sc.ScanPaths(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sources: %w", err)
	}

	var detected []types.ParsedRoute
	for _, f := range files {
		printVerbose("Scanning %s", f.Path)
		detected = append(detected, routes.Match(string(f.Content), routes.MatchOptions{
			ExcludeComments: cfg.Analysis.ExcludeComments,
			SourceFile:      f.Path,
		})...)
	}

	return detected, nil
}
