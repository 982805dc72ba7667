package modules_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validmsg/pkg/messages"
	"github.com/dmitrymomot/validmsg/pkg/modules"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads every supported format", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"app/validations/messages.yaml":   {Data: []byte("presence: \"{description} is required\"\ndate:\n  before: \"{description} is too late\"\n")},
			"admin/validations/messages.json": {Data: []byte(`{"email": "{description} is not an email", "limit": 3}`)},
			"shop/validations/messages.toml":  {Data: []byte("url = \"{description} is not a link\"\n\n[range]\nmin = \"{description} is too small\"\n")},
			"README.md":                       {Data: []byte("ignored")},
		}

		mods, err := modules.Load(fsys)
		require.NoError(t, err)
		require.Len(t, mods, 3)

		assert.Equal(t, messages.Map{
			"presence":    "{description} is required",
			"date.before": "{description} is too late",
		}, mods["app/validations/messages"].Default)

		assert.Equal(t, messages.Map{
			"email": "{description} is not an email",
			"limit": "3",
		}, mods["admin/validations/messages"].Default)

		assert.Equal(t, messages.Map{
			"url":       "{description} is not a link",
			"range.min": "{description} is too small",
		}, mods["shop/validations/messages"].Default)

		assert.Equal(t, []string{
			"admin/validations/messages",
			"app/validations/messages",
			"shop/validations/messages",
		}, mods.Matches())
	})

	t.Run("yml extension and upper case extension", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"a/validations/messages.yml":  {Data: []byte("blank: \"{description} must be empty\"\n")},
			"b/validations/messages.YAML": {Data: []byte("odd: \"{description} must be odd\"\n")},
		}

		mods, err := modules.Load(fsys)
		require.NoError(t, err)
		assert.Equal(t, "{description} must be empty", mods["a/validations/messages"].Default["blank"])
		assert.Equal(t, "{description} must be odd", mods["b/validations/messages"].Default["odd"])
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"app/validations/messages.json": {Data: []byte(`{not json`)},
		}

		_, err := modules.Load(fsys)
		require.ErrorIs(t, err, modules.ErrInvalidFile)
	})

	t.Run("duplicate module path", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"app/validations/messages.json": {Data: []byte(`{}`)},
			"app/validations/messages.yaml": {Data: []byte("a: b\n")},
		}

		_, err := modules.Load(fsys)
		require.ErrorIs(t, err, modules.ErrDuplicateModule)
	})

	t.Run("empty file has no default export", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"app/validations/messages.yaml": {Data: []byte("")},
		}

		mods, err := modules.Load(fsys)
		require.NoError(t, err)
		require.Contains(t, mods, "app/validations/messages")
		assert.Nil(t, mods["app/validations/messages"].Default)
	})
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	_, err := modules.LoadDir(t.TempDir())
	require.NoError(t, err)
}
