// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// renderStructured renders a value as yaml or json.
func renderStructured(v interface{}, outputFormat string) (string, error) {
	switch outputFormat {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to render yaml: %w", err)
		}
		return string(data), nil
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render json: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format %q", outputFormat)
	}
}

// outputFormatOr returns the --format flag value, the config value, or text.
func outputFormatOr(configured string) string {
	if format != "" {
		return format
	}
	if configured != "" {
		return configured
	}
	return "text"
}
