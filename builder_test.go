// File: configstore/builder_test.go
package configstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("StandaloneWithFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.json")
		store, err := NewBuilder().
			WithFile(path).
			WithDefaults(map[string]any{
				"server": map[string]any{"port": 8080},
			}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, path, store.Path())
		assert.FileExists(t, path)

		port, err := store.Int64("port", 0, "server")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), port)
	})

	t.Run("StandaloneWithoutFile", func(t *testing.T) {
		store, err := NewBuilder().WithAutoSave(false).Build()
		require.NoError(t, err)
		assert.Empty(t, store.Path())
		assert.False(t, store.AutoSave())
	})

	t.Run("SharedReturnsSingleton", func(t *testing.T) {
		resetSharedStore(t)
		path := filepath.Join(t.TempDir(), "app.json")

		first, err := NewBuilder().WithFile(path).WithShared().Build()
		require.NoError(t, err)

		second, err := NewBuilder().WithFile(path).WithShared().Build()
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("ValidatorsRunInOrder", func(t *testing.T) {
		var order []string
		store, err := NewBuilder().
			WithAutoSave(false).
			WithValidator(func(s *Store) error {
				order = append(order, "first")
				return s.Set("checked", true)
			}).
			WithValidator(func(s *Store) error {
				order = append(order, "second")
				return nil
			}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
		assert.True(t, store.Has("checked"))
	})

	t.Run("ValidatorFailureFailsBuild", func(t *testing.T) {
		wantErr := errors.New("port out of range")
		_, err := NewBuilder().
			WithAutoSave(false).
			WithValidator(func(s *Store) error { return wantErr }).
			Build()
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("UnsupportedExtensionFailsBuild", func(t *testing.T) {
		_, err := NewBuilder().
			WithFile(filepath.Join(t.TempDir(), "app.yaml")).
			Build()
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestMustBuild(t *testing.T) {
	t.Run("ReturnsStore", func(t *testing.T) {
		store := NewBuilder().WithAutoSave(false).MustBuild()
		assert.NotNil(t, store)
	})

	t.Run("PanicsOnError", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().
				WithFile(filepath.Join(t.TempDir(), "app.yaml")).
				MustBuild()
		})
	})
}

func TestQuick(t *testing.T) {
	resetSharedStore(t)
	path := filepath.Join(t.TempDir(), "app.json")

	store, err := Quick(path, map[string]any{
		"server": map[string]any{"port": 8080},
	})
	require.NoError(t, err)
	assert.FileExists(t, path)

	again, err := Quick(path, nil)
	require.NoError(t, err)
	assert.Same(t, store, again)
}

func TestMustQuick(t *testing.T) {
	resetSharedStore(t)

	assert.Panics(t, func() {
		MustQuick(filepath.Join(t.TempDir(), "app.toml"), nil)
	})
}
