// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routelens/routelens/pkg/types"
)

func TestBuildArgs_Minimal(t *testing.T) {
	args := BuildArgs(types.Invocation{
		Method: "get",
		Path:   "/users",
	}, false, nil)

	assert.Equal(t, []string{"request", "-P", "/users", "-X", "GET"}, args)
}

func TestBuildArgs_Full(t *testing.T) {
	inv := types.Invocation{
		Method:       "post",
		Path:         "/users/42",
		Data:         `{"name":"ada"}`,
		Headers:      []string{"Content-Type: application/json", "X-Trace: 1"},
		AppEntryFile: "src/index.ts",
	}

	args := BuildArgs(inv, true, []string{"--color"})

	assert.Equal(t, []string{
		"request",
		"src/index.ts",
		"-P", "/users/42",
		"-X", "POST",
		"-d", `{"name":"ada"}`,
		"-H", "Content-Type: application/json",
		"-H", "X-Trace: 1",
		"--watch",
		"--color",
	}, args)
}

func TestBuildArgs_EntryFileBeforeFlags(t *testing.T) {
	args := BuildArgs(types.Invocation{
		Method:       "get",
		Path:         "/",
		AppEntryFile: "app.ts",
	}, false, nil)

	assert.Equal(t, "app.ts", args[1])
	assert.Equal(t, "-P", args[2])
}

func TestBuildArgs_MethodUppercased(t *testing.T) {
	args := BuildArgs(types.Invocation{Method: "delete", Path: "/x"}, false, nil)
	assert.Contains(t, args, "DELETE")
	assert.NotContains(t, args, "delete")
}
