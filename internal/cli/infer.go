// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/internal/config"
	"github.com/routelens/routelens/internal/schema"
	"github.com/routelens/routelens/pkg/types"
)

var (
	inferPath     string
	inferMethod   string
	inferHintLine int
	inferRoot     string
)

var inferCmd = &cobra.Command{
	Use:   "infer <file>",
	Short: "Infer the body fields of a route from its declared schema type",
	Long: `Infer a route's request body fields by walking the application's declared
schema type.

The type index is scoped to the project when a tsconfig.json is present at
the root, else to the given file alone. When no usable schema can be
determined the command reports that inference is unavailable; that is not an
error, the caller should fall back to free-form input.

Example:
  routelens infer src/index.ts -P /users -X post
  routelens infer src/index.ts -P /users/:id -X put --hint-line 42`,
	Args: cobra.ExactArgs(1),
	RunE: runInfer,
}

func init() {
	inferCmd.Flags().StringVarP(&inferPath, "path", "P", "", "route path literal as written in source")
	inferCmd.Flags().StringVarP(&inferMethod, "method", "X", "", "lowercase route method (get, post, ...)")
	inferCmd.Flags().IntVar(&inferHintLine, "hint-line", 0, "line number hint to disambiguate repeated routes")
	inferCmd.Flags().StringVar(&inferRoot, "root", ".", "project root for the type index")
	_ = inferCmd.MarkFlagRequired("path")
	_ = inferCmd.MarkFlagRequired("method")
}

func runInfer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	file, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve file path: %w", err)
	}

	fields, ok := inferFields(inferRoot, file, inferMethod, inferPath, inferHintLine)
	if !ok {
		printInfo("No schema could be determined for %s %s; falling back to free-form input", inferMethod, inferPath)
		return nil
	}

	outputFormat := outputFormatOr(cfg.Format)
	if outputFormat != "text" {
		out, err := renderStructured(fields, outputFormat)
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	}

	for _, f := range fields {
		suffix := ""
		if f.IsArrayLike {
			suffix = " (array)"
		}
		printInfo("%-20s %s%s", f.Name, f.Type, suffix)
	}

	return nil
}

// inferFields builds a project type index and runs schema inference. Any
// failure along the way is treated as "inference unavailable", never as an
// error surfaced to the caller.
//
// The file path is absolutized first: project indexes key parsed files by
// absolute path, so a root-relative entry file would never be found.
func inferFields(root, file, method, pathLiteral string, hintLine int) ([]types.FormFieldSpec, bool) {
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}

	idx, err := schema.BuildIndex(root, file)
	if err != nil {
		printVerbose("Type index unavailable: %v", err)
		return nil, false
	}
	defer idx.Close()

	return schema.Infer(idx, schema.InferRequest{
		File:             file,
		Method:           method,
		RoutePathLiteral: pathLiteral,
		HintLine:         hintLine,
	})
}
