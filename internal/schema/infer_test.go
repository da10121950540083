// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelens/routelens/pkg/types"
)

func buildTestIndex(t *testing.T, sources map[string]string) *Index {
	t.Helper()
	idx, err := BuildIndexFromSources(sources)
	require.NoError(t, err)
	t.Cleanup(idx.Close)
	return idx
}

func fieldByName(fields []types.FormFieldSpec, name string) *types.FormFieldSpec {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}

func TestInfer_NewExpressionSchema(t *testing.T) {
	const source = `
type Env = {};

type Schema = {
  '/users': {
    $post: {
      input: {
        form: {
          name: string;
          age: number;
          tags: string[];
        };
      };
    };
  };
};

const app = new Hono<Env, Schema>();
app.post('/users', (c) => c.json({}));
`
	idx := buildTestIndex(t, map[string]string{"app.ts": source})

	fields, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "post",
		RoutePathLiteral: "/users",
	})
	require.True(t, ok)
	require.Len(t, fields, 3)

	name := fieldByName(fields, "name")
	require.NotNil(t, name)
	assert.Equal(t, "string", name.Type)
	assert.False(t, name.IsArrayLike)

	age := fieldByName(fields, "age")
	require.NotNil(t, age)
	assert.Equal(t, "number", age.Type)

	tags := fieldByName(fields, "tags")
	require.NotNil(t, tags)
	assert.Equal(t, "string[]", tags.Type)
	assert.True(t, tags.IsArrayLike)
}

func TestInfer_AnnotatedReceiver(t *testing.T) {
	const source = `
type Schema = {
  '/items': {
    $put: {
      input: {
        form: { title: string };
      };
    };
  };
};

const app: Hono<{}, Schema> = createApp();
app.put('/items', handler);
`
	idx := buildTestIndex(t, map[string]string{"app.ts": source})

	fields, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "put",
		RoutePathLiteral: "/items",
	})
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "title", fields[0].Name)
	assert.Equal(t, "string", fields[0].Type)
}

func TestInfer_CrossFileSchemaType(t *testing.T) {
	sources := map[string]string{
		"schema.ts": `
export type AppSchema = {
  '/users': {
    $post: {
      input: {
        form: UserForm;
      };
    };
  };
};

export interface UserForm {
  name: string;
  avatar: File;
}
`,
		"app.ts": `
import { AppSchema } from './schema';

const app = new Hono<{}, AppSchema>();
app.post('/users', handler);
`,
	}
	idx := buildTestIndex(t, sources)

	fields, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "post",
		RoutePathLiteral: "/users",
	})
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, "avatar", fields[1].Name)
	assert.Equal(t, "File", fields[1].Type)
}

func TestInfer_UnionFormBranches(t *testing.T) {
	const source = `
type Schema = {
  '/posts': {
    $post: {
      input: {
        form: { title: string } | { title: string; draft: boolean };
      };
    };
  };
};

const app = new Hono<{}, Schema>();
app.post('/posts', handler);
`
	idx := buildTestIndex(t, map[string]string{"app.ts": source})

	fields, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "post",
		RoutePathLiteral: "/posts",
	})
	require.True(t, ok)

	// Branch fields union by name; the later branch wins on collision.
	require.Len(t, fields, 2)
	assert.NotNil(t, fieldByName(fields, "title"))
	draft := fieldByName(fields, "draft")
	require.NotNil(t, draft)
	assert.Equal(t, "boolean", draft.Type)
}

func TestInfer_ArrayLikeDetection(t *testing.T) {
	const source = `
type Schema = {
  '/upload': {
    $post: {
      input: {
        form: {
          files: File[];
          names: Array<string>;
          single: File;
        };
      };
    };
  };
};

const app = new Hono<{}, Schema>();
app.post('/upload', handler);
`
	idx := buildTestIndex(t, map[string]string{"app.ts": source})

	fields, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "post",
		RoutePathLiteral: "/upload",
	})
	require.True(t, ok)

	assert.True(t, fieldByName(fields, "files").IsArrayLike)
	assert.True(t, fieldByName(fields, "names").IsArrayLike)
	assert.False(t, fieldByName(fields, "single").IsArrayLike)
}

func TestInfer_HintLineDisambiguation(t *testing.T) {
	const source = `
type SchemaA = {
  '/dup': { $post: { input: { form: { a: string } } } };
};
type SchemaB = {
  '/dup': { $post: { input: { form: { b: string } } } };
};

const app = new Hono<{}, SchemaA>();
app.post('/dup', handler);

const admin = new Hono<{}, SchemaB>();
admin.post('/dup', handler);
`
	idx := buildTestIndex(t, map[string]string{"app.ts": source})

	fields, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "post",
		RoutePathLiteral: "/dup",
		HintLine:         13,
	})
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "b", fields[0].Name)
}

func TestInfer_NoSchemaArguments(t *testing.T) {
	const source = `
const app = new Hono();
app.post('/users', handler);
`
	idx := buildTestIndex(t, map[string]string{"app.ts": source})

	_, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "post",
		RoutePathLiteral: "/users",
	})
	assert.False(t, ok)
}

func TestInfer_MissingChainKey(t *testing.T) {
	// The schema declares $get only, so a $post lookup finds nothing.
	const source = `
type Schema = {
  '/users': {
    $get: {
      input: { form: { q: string } };
    };
  };
};

const app = new Hono<{}, Schema>();
app.post('/users', handler);
`
	idx := buildTestIndex(t, map[string]string{"app.ts": source})

	_, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "post",
		RoutePathLiteral: "/users",
	})
	assert.False(t, ok)
}

func TestInfer_SelfReferentialTypeTerminates(t *testing.T) {
	const source = `
type Loop = Loop;

const app: Loop = createApp();
app.post('/users', handler);
`
	idx := buildTestIndex(t, map[string]string{"app.ts": source})

	_, ok := Infer(idx, InferRequest{
		File:             "app.ts",
		Method:           "post",
		RoutePathLiteral: "/users",
	})
	assert.False(t, ok)
}

func TestInfer_UnknownFile(t *testing.T) {
	idx := buildTestIndex(t, map[string]string{"app.ts": "const x = 1;"})

	_, ok := Infer(idx, InferRequest{
		File:             "missing.ts",
		Method:           "get",
		RoutePathLiteral: "/",
	})
	assert.False(t, ok)
}

func TestBuildIndex_TypeDeclLookup(t *testing.T) {
	idx := buildTestIndex(t, map[string]string{
		"types.ts": `
type Alias = { a: string };
interface Shape { b: number }
`,
	})

	alias, ok := idx.LookupTypeDecl("Alias")
	require.True(t, ok)
	assert.Equal(t, "Alias", alias.Name)
	assert.NotNil(t, alias.Node)

	shape, ok := idx.LookupTypeDecl("Shape")
	require.True(t, ok)
	assert.Equal(t, "Shape", shape.Name)

	_, ok = idx.LookupTypeDecl("Missing")
	assert.False(t, ok)
}
