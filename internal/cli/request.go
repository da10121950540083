// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routelens/routelens/internal/config"
	"github.com/routelens/routelens/internal/request"
	"github.com/routelens/routelens/internal/routes"
	"github.com/routelens/routelens/internal/store"
	"github.com/routelens/routelens/pkg/types"
)

var (
	requestData    string
	requestHeaders []string
	requestParams  []string
	requestWatch   bool
	requestExec    bool
	requestEntry   string
	requestRoot    string
)

// sessionStore remembers path parameter and form field values entered during
// this process. Values carry over between invocations of the same run only.
var sessionStore store.Store = store.NewMemoryStore()

var requestCmd = &cobra.Command{
	Use:   "request <method> <path>",
	Short: "Build and optionally run an invocation of the external request tool",
	Long: `Build the argument vector for the external request tool from a route,
substituting path parameters and filling the request body.

The path is given as written in source, with :name placeholders. Values for
placeholders come from --param flags; values seen earlier in the same run are
remembered and reused. When no --data is given for a body-carrying method,
the body is templated from the route's inferred schema.

By default the resolved command line is printed. With --exec it is run with
the configured tool binary.

Example:
  routelens request get /users
  routelens request put /users/:id --param id=42 -d '{"name":"ada"}'
  routelens request post /users --exec`,
	Args: cobra.ExactArgs(2),
	RunE: runRequest,
}

func init() {
	requestCmd.Flags().StringVarP(&requestData, "data", "d", "", "request body data")
	requestCmd.Flags().StringArrayVarP(&requestHeaders, "header", "H", nil, "request header (repeatable)")
	requestCmd.Flags().StringArrayVar(&requestParams, "param", nil, "path parameter value as name=value (repeatable)")
	requestCmd.Flags().BoolVar(&requestWatch, "watch", false, "pass --watch to the request tool")
	requestCmd.Flags().BoolVar(&requestExec, "exec", false, "run the request tool instead of printing the command")
	requestCmd.Flags().StringVar(&requestEntry, "entry", "", "application entry file (overrides config and probing)")
	requestCmd.Flags().StringVar(&requestRoot, "root", ".", "project root")
}

func runRequest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	method := strings.ToLower(args[0])
	routePath := args[1]

	entry := requestEntry
	if entry == "" {
		entry = cfg.Analysis.EntryFile
	}
	entryFile, err := request.ResolveEntryFile(requestRoot, entry)
	if err != nil {
		// The tool contract allows omitting the entry file; surface the
		// problem but keep going.
		printVerbose("Entry file not resolved: %v", err)
		entryFile = ""
	}

	paramValues := resolveParamValues(routePath, requestParams, requestRoot)
	resolvedPath := routes.SubstituteParams(routePath, paramValues)

	data := requestData
	if data == "" && methodCarriesBody(method) && entryFile != "" {
		if body, ok := templateBody(requestRoot, entryFile, method, routePath); ok {
			data = body
		}
	}

	inv := types.Invocation{
		Method:       method,
		Path:         resolvedPath,
		Data:         data,
		Headers:      requestHeaders,
		AppEntryFile: entryFile,
	}

	toolArgs := request.BuildArgs(inv, requestWatch, cfg.Tool.ExtraArgs)

	if !requestExec {
		printInfo("%s %s", cfg.Tool.Binary, strings.Join(toolArgs, " "))
		return nil
	}

	printVerbose("Running %s %s", cfg.Tool.Binary, strings.Join(toolArgs, " "))

	tool := exec.CommandContext(cmd.Context(), cfg.Tool.Binary, toolArgs...)
	tool.Stdin = os.Stdin
	tool.Stdout = os.Stdout
	tool.Stderr = os.Stderr

	if err := tool.Run(); err != nil {
		return fmt.Errorf("request tool failed: %w", err)
	}

	return nil
}

// resolveParamValues gathers values for every :name placeholder in the path.
// Explicit --param flags win and are remembered; otherwise the session store
// is consulted; names with no value at all substitute as empty string.
func resolveParamValues(routePath string, flags []string, workspace string) map[string]string {
	given := make(map[string]string)
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			continue
		}
		given[name] = value
	}

	values := make(map[string]string)
	for _, name := range routes.ExtractParamNames(routePath) {
		key := store.Key{Prefix: "pathParam", Workspace: workspace, Name: name}

		if value, ok := given[name]; ok {
			values[name] = value
			sessionStore.Set(key, value)
			continue
		}

		if value, ok := sessionStore.Get(key); ok {
			values[name] = value
		}
	}

	return values
}

// methodCarriesBody reports whether a request body is expected for the method.
func methodCarriesBody(method string) bool {
	switch method {
	case "post", "put", "patch", "delete":
		return true
	}
	return false
}

// templateBody renders a JSON body template from the route's inferred schema,
// filling fields with remembered values where available.
func templateBody(root, file, method, routePath string) (string, bool) {
	fields, ok := inferFields(root, file, method, routePath, 0)
	if !ok || len(fields) == 0 {
		return "", false
	}

	body := make(map[string]any, len(fields))
	for _, f := range fields {
		key := store.Key{Prefix: "formField", Workspace: root, Name: f.Name}
		if value, ok := sessionStore.Get(key); ok {
			body[f.Name] = value
			continue
		}
		body[f.Name] = zeroFieldValue(f)
	}

	out, err := json.Marshal(body)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// zeroFieldValue picks a placeholder value matching the field's declared type.
func zeroFieldValue(f types.FormFieldSpec) any {
	if f.IsArrayLike {
		return []any{}
	}

	switch {
	case strings.Contains(f.Type, "number"):
		return 0
	case strings.Contains(f.Type, "boolean"):
		return false
	default:
		return ""
	}
}
