// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package jsdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_BasicExample(t *testing.T) {
	const source = `/**
 * Create a user.
 * @example
 * POST {"name": "ada"}
 */
app.post('/users', handler);
`
	examples := Extract(source)
	require.Len(t, examples, 1)

	ex := examples[0]
	assert.Equal(t, "POST", ex.Method)
	assert.Equal(t, `{"name": "ada"}`, ex.JSONBody)
	assert.Equal(t, "/users", ex.RoutePath)
	assert.Equal(t, "post", ex.RouteMethod)
	assert.Equal(t, strings.Index(source, "POST"), ex.MethodStartIndex)
}

func TestExtract_MultilineBody(t *testing.T) {
	const source = `/**
 * @example
 * POST {
 *   "name": "ada",
 *   "tags": {"a": 1}
 * }
 */
app.post('/users', handler);
`
	examples := Extract(source)
	require.Len(t, examples, 1)

	body := examples[0].JSONBody
	assert.True(t, strings.HasPrefix(body, "{"))
	assert.True(t, strings.HasSuffix(body, "}"))
	assert.Contains(t, body, `"name": "ada"`)
	assert.Contains(t, body, `"tags": {"a": 1}`)
}

func TestExtract_MethodOnlyExample(t *testing.T) {
	const source = `/**
 * @example
 * GET
 */
app.get('/users', handler);
`
	examples := Extract(source)
	require.Len(t, examples, 1)
	assert.Equal(t, "GET", examples[0].Method)
	assert.Empty(t, examples[0].JSONBody)
}

func TestExtract_MethodMismatchDropped(t *testing.T) {
	const source = `/**
 * @example
 * GET {"q": "x"}
 */
app.post('/users', handler);
`
	assert.Empty(t, Extract(source))
}

func TestExtract_NoFollowingRouteDropped(t *testing.T) {
	const source = `/**
 * @example
 * POST {"name": "ada"}
 */
const nothing = 1;
`
	assert.Empty(t, Extract(source))
}

func TestExtract_TruncatedBodyDropped(t *testing.T) {
	const source = `/**
 * @example
 * POST {"name": "ada",
 *   "open": {
 */
app.post('/users', handler);
`
	assert.Empty(t, Extract(source))
}

func TestExtract_OutsideExampleSectionIgnored(t *testing.T) {
	const source = `/**
 * POST {"name": "not tagged"}
 * @param c context
 */
app.post('/users', handler);
`
	assert.Empty(t, Extract(source))
}

func TestExtract_OtherTagEndsSection(t *testing.T) {
	const source = `/**
 * @example
 * @returns nothing
 * POST {"name": "after returns"}
 */
app.post('/users', handler);
`
	assert.Empty(t, Extract(source))
}

func TestExtract_MultipleExamplesInBlock(t *testing.T) {
	const source = `/**
 * @example
 * POST {"name": "first"}
 * @example
 * POST {"name": "second"}
 */
app.post('/users', handler);
`
	examples := Extract(source)
	require.Len(t, examples, 2)
	assert.Equal(t, `{"name": "first"}`, examples[0].JSONBody)
	assert.Equal(t, `{"name": "second"}`, examples[1].JSONBody)
}

func TestExtract_MixedMethodsFiltered(t *testing.T) {
	// Only the example matching the following route's method survives.
	const source = `/**
 * @example
 * GET
 * @example
 * POST {"name": "ada"}
 */
app.post('/users', handler);
`
	examples := Extract(source)
	require.Len(t, examples, 1)
	assert.Equal(t, "POST", examples[0].Method)
}

func TestExtract_MultipleBlocks(t *testing.T) {
	const source = `/**
 * @example
 * GET
 */
app.get('/users', handler);

/**
 * @example
 * DELETE
 */
app.delete('/users/:id', handler);
`
	examples := Extract(source)
	require.Len(t, examples, 2)
	assert.Equal(t, "/users", examples[0].RoutePath)
	assert.Equal(t, "/users/:id", examples[1].RoutePath)
}

func TestExtract_AssociatesFirstRouteAfterBlock(t *testing.T) {
	// The association skips ahead past unrelated statements to the first
	// recognized route call.
	const source = `/**
 * @example
 * PUT {"v": 1}
 */
const helper = 1;

app.put('/items/:id', handler);
`
	examples := Extract(source)
	require.Len(t, examples, 1)
	assert.Equal(t, "/items/:id", examples[0].RoutePath)
}

func TestExtract_NonJSDocBlockIgnored(t *testing.T) {
	const source = `/* plain block
GET {"x": 1}
*/
app.get('/users', handler);
`
	assert.Empty(t, Extract(source))
}

func TestExtract_MethodKeywordMustStartLine(t *testing.T) {
	const source = `/**
 * @example
 * Send a POST {"name": "x"}
 */
app.post('/users', handler);
`
	assert.Empty(t, Extract(source))
}

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract(""))
}
