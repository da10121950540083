// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for routelens.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	format  string
	verbose bool
	quiet   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "routelens",
	Short: "Route detection and request tooling for Hono applications",
	Long: `routelens statically analyzes Hono TypeScript/JavaScript sources to
detect HTTP route definitions, resolve dynamic path expressions, extract
documented request examples, and infer request body shape from the
application's declared schema type.

Example:
  routelens scan                          # Detect routes in the current directory
  routelens examples src/index.ts         # Extract @example request payloads
  routelens infer -P /users -X post       # Infer the body fields of a route
  routelens request post /users/:id       # Build a request tool invocation
  routelens watch                         # Rescan on file changes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: routelens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: text, yaml, json (default: text)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(watchCmd)
}

// printInfo prints a message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
