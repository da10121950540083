// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package routes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_LiteralPaths(t *testing.T) {
	const source = `
import { Hono } from 'hono';

const app = new Hono();

app.get('/users', (c) => c.json([]));
app.post('/users', (c) => c.json({}));
app.delete("/users/:id", (c) => c.json({}));
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 3)

	assert.Equal(t, "get", matched[0].Method)
	assert.Equal(t, "/users", matched[0].Path)
	assert.Equal(t, "post", matched[1].Method)
	assert.Equal(t, "/users", matched[1].Path)
	assert.Equal(t, "delete", matched[2].Method)
	assert.Equal(t, "/users/:id", matched[2].Path)
}

func TestMatch_CallStartIndexAtReceiver(t *testing.T) {
	const source = `const app = new Hono();
  app.get('/users', handler);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 1)

	// The offset points at the "a" of "app", not at the leading whitespace.
	assert.Equal(t, strings.Index(source, "app.get"), matched[0].CallStartIndex)
	assert.Equal(t, byte('a'), source[matched[0].CallStartIndex])
}

func TestMatch_SourceLineAndLabel(t *testing.T) {
	const source = `const app = new Hono();

app.get('/users/:id', handler);
`
	matched := Match(source, MatchOptions{ExcludeComments: true, SourceFile: "src/index.ts"})
	require.Len(t, matched, 1)

	assert.Equal(t, "src/index.ts", matched[0].SourceFile)
	assert.Equal(t, 3, matched[0].SourceLine)
	assert.Equal(t, "getUsersByid", matched[0].Label)
}

func TestMatch_MethodNamesCaseSensitive(t *testing.T) {
	const source = `
app.GET('/users', handler);
app.Get('/users', handler);
app.fetch('/users', handler);
app.get('/ok', handler);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 1)
	assert.Equal(t, "/ok", matched[0].Path)
}

func TestMatch_NonIdentifierReceiverSkipped(t *testing.T) {
	const source = `
this.router.get('/nested', handler);
app.get('/flat', handler);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 1)
	assert.Equal(t, "/flat", matched[0].Path)
}

func TestMatch_ExcludeComments(t *testing.T) {
	const source = `
const app = new Hono();
// app.get('/commented', handler);
/* app.post('/blocked', handler); */
app.get('/live', handler);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 1)
	assert.Equal(t, "/live", matched[0].Path)
}

func TestMatch_IncludeComments(t *testing.T) {
	// With only commented-out calls the structural pass finds nothing and
	// the regex fallback reports them; disabling the filter keeps them.
	const source = `// app.get('/commented', handler);
`
	matched := Match(source, MatchOptions{ExcludeComments: false})
	require.Len(t, matched, 1)
	assert.Equal(t, "/commented", matched[0].Path)

	assert.Empty(t, Match(source, DefaultMatchOptions()))
}

func TestMatch_ConstResolution(t *testing.T) {
	const source = `
const API_PATH = '/api/v1/users';
const app = new Hono();
app.get(API_PATH, handler);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 1)
	assert.Equal(t, "/api/v1/users", matched[0].Path)
}

func TestMatch_ConstResolution_NearestPreceding(t *testing.T) {
	const source = `
const p = '/first';
const p2 = p;
app.get(p, handler);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 1)
	assert.Equal(t, "/first", matched[0].Path)
}

func TestMatch_Concatenation(t *testing.T) {
	const source = `
const base = '/api';
app.get(base + '/users', handler);
app.post('/v' + '2' + '/items', handler);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 2)
	assert.Equal(t, "/api/users", matched[0].Path)
	assert.Equal(t, "/v2/items", matched[1].Path)
}

func TestMatch_TemplateLiteral(t *testing.T) {
	const source = "app.get(`/users/${userId}/posts`, handler);\n" +
		"app.get(`/files/${dir + name}`, handler);\n"

	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 2)

	// A simple identifier keeps its name; a compound expression collapses.
	assert.Equal(t, "/users/${userId}/posts", matched[0].Path)
	assert.Equal(t, "/files/${...}", matched[1].Path)
}

func TestMatch_TemplateEscapeSequencePreserved(t *testing.T) {
	// Escape sequences keep their source text in the rendered path instead
	// of vanishing from it.
	const source = "app.get(`/a\\u002Fb/${id}`, handler);\n" +
		"app.post(`/tab\\there`, handler);\n"

	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 2)
	assert.Equal(t, `/a/b/${id}`, matched[0].Path)
	assert.Equal(t, `/tab\there`, matched[1].Path)
}

func TestMatch_UnresolvablePathDropped(t *testing.T) {
	const source = `
let dynamic = '/users';
app.get(dynamic, handler);
app.get(buildPath(), handler);
app.get('/kept', handler);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 1)
	assert.Equal(t, "/kept", matched[0].Path)
}

func TestMatch_SelfReferentialConstTerminates(t *testing.T) {
	const source = `
const p = p;
app.get(p, handler);
`
	// Must terminate and drop the route rather than recurse forever.
	assert.Empty(t, Match(source, DefaultMatchOptions()))
}

func TestMatch_OrderedByOffset(t *testing.T) {
	const source = `
app.head('/a', h);
app.options('/b', h);
app.patch('/c', h);
`
	matched := Match(source, DefaultMatchOptions())
	require.Len(t, matched, 3)
	for i := 1; i < len(matched); i++ {
		assert.Greater(t, matched[i].CallStartIndex, matched[i-1].CallStartIndex)
	}
}

func TestMatch_Idempotent(t *testing.T) {
	const source = `
const base = '/api';
app.get(base + '/users', handler);
app.post('/users', handler);
`
	first := Match(source, DefaultMatchOptions())
	second := Match(source, DefaultMatchOptions())
	assert.Equal(t, first, second)
}

func TestMatch_EmptySource(t *testing.T) {
	assert.Empty(t, Match("", DefaultMatchOptions()))
}

func TestMatchRegex_LiteralOnly(t *testing.T) {
	const source = `
app.get('/users', handler);
app.post(somePath, handler);
router.put("/items/:id", handler);
`
	matched := matchRegex(source)
	require.Len(t, matched, 2)
	assert.Equal(t, "get", matched[0].Method)
	assert.Equal(t, "/users", matched[0].Path)
	assert.Equal(t, "put", matched[1].Method)
	assert.Equal(t, "/items/:id", matched[1].Path)
}

func TestMatchRegex_OffsetAtReceiver(t *testing.T) {
	const source = `  app.get('/users', handler);`

	matched := matchRegex(source)
	require.Len(t, matched, 1)
	assert.Equal(t, strings.Index(source, "app"), matched[0].CallStartIndex)
}

func TestFirstCallAfter(t *testing.T) {
	const source = `
app.get('/first', h);
app.post('/second', h);
`
	second := strings.Index(source, "app.post")

	route, ok := FirstCallAfter(source, second)
	require.True(t, ok)
	assert.Equal(t, "post", route.Method)
	assert.Equal(t, "/second", route.Path)

	_, ok = FirstCallAfter(source, len(source))
	assert.False(t, ok)
}
