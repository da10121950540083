// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		expected string
	}{
		{"root path", "get", "/", "get"},
		{"simple path", "get", "/users", "getUsers"},
		{"nested path", "post", "/users/settings", "postUsersSettings"},
		{"path param", "get", "/users/:id", "getUsersByid"},
		{"multiple params", "put", "/orgs/:org/repos/:repo", "putOrgsByorgReposByrepo"},
		{"uppercase method", "DELETE", "/users", "deleteUsers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RouteLabel(tt.method, tt.path))
		})
	}
}
