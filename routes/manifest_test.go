package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLoad(t *testing.T) {
	doc := []byte(`
routes:
  - path: /posts/details/:postId/:commentId
    metadata:
      section: posts
    search:
      - name: query
        type: string
        default: hello world
      - name: optional
        type: string
        default: the parsing worked
  - path: /users/:id
    search:
      - name: page
        type: int
        required: false
      - name: sort
        type: string
        enum: [asc, desc]
        default: asc
  - path: /sessions/:token
    search:
      - name: session
        type: uuid
  - path: /about
`)

	reg := NewRegistry()
	require.NoError(t, reg.Load(doc))

	t.Run("registers in manifest order", func(t *testing.T) {
		assert.Equal(t, []string{
			"/posts/details/:postId/:commentId",
			"/users/:id",
			"/sessions/:token",
			"/about",
		}, reg.Templates())
	})

	t.Run("metadata attached", func(t *testing.T) {
		m, err := reg.Match("/posts/details/1/2")
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, map[string]any{"section": "posts"}, m.Metadata)
	})

	t.Run("search schema applies defaults in declaration order", func(t *testing.T) {
		got, err := reg.Build("/posts/details/:postId/:commentId", BuildInput{
			Params:       map[string]string{"postId": "123", "commentId": "456"},
			SearchParams: map[string]any{},
		})
		require.NoError(t, err)
		assert.Equal(t, "/posts/details/123/456?query=%22hello%20world%22&optional=%22the%20parsing%20worked%22", got)
	})

	t.Run("optional int and enum", func(t *testing.T) {
		got, err := reg.ParseSearchParams("page=2", "/users/:id")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"page": 2, "sort": "asc"}, got)

		_, err = reg.ParseSearchParams("sort=%22sideways%22", "/users/:id")
		assert.Error(t, err)
	})

	t.Run("uuid field", func(t *testing.T) {
		got, err := reg.ParseSearchParams("session=%22550E8400-E29B-41D4-A716-446655440000%22", "/sessions/:token")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"session": "550e8400-e29b-41d4-a716-446655440000"}, got)
	})
}

func TestRegistryLoadErrors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		err := NewRegistry().Load([]byte("routes: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing manifest")
	})

	t.Run("unknown param type", func(t *testing.T) {
		doc := []byte(`
routes:
  - path: /a
    search:
      - name: x
        type: decimal
`)
		err := NewRegistry().Load(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown search param type "decimal"`)
	})

	t.Run("invalid template", func(t *testing.T) {
		err := NewRegistry().Load([]byte("routes:\n  - path: /posts/:post id\n"))
		require.Error(t, err)

		var serr *SyntaxError
		assert.ErrorAs(t, err, &serr)
	})

	t.Run("duplicate path", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Add("/a"))

		err := reg.Load([]byte("routes:\n  - path: /a\n"))
		assert.ErrorIs(t, err, ErrDuplicateTemplate)
	})

	t.Run("frozen registry", func(t *testing.T) {
		reg := NewRegistry()
		reg.Freeze()
		assert.ErrorIs(t, reg.Load([]byte("routes: []")), ErrFrozen)
	})
}
