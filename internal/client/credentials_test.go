//go:build unit

package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"courtbook/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("missing file loads as empty credentials", func(t *testing.T) {
		store := client.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))

		creds, err := store.Load()
		require.NoError(t, err)
		assert.True(t, creds.Empty())
	})

	t.Run("save and load round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "credentials.json")
		store := client.NewFileStore(path)

		saved := client.Credentials{AccessToken: "a", RefreshToken: "r"}
		require.NoError(t, store.Save(saved))

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("file is written with owner-only permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		store := client.NewFileStore(path)
		require.NoError(t, store.Save(client.Credentials{AccessToken: "a", RefreshToken: "r"}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("clear removes the file and is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "credentials.json")
		store := client.NewFileStore(path)
		require.NoError(t, store.Save(client.Credentials{AccessToken: "a", RefreshToken: "r"}))

		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())

		creds, err := store.Load()
		require.NoError(t, err)
		assert.True(t, creds.Empty())
	})
}

func TestMemoryStore(t *testing.T) {
	store := client.NewMemoryStore()

	creds, err := store.Load()
	require.NoError(t, err)
	assert.True(t, creds.Empty())

	require.NoError(t, store.Save(client.Credentials{AccessToken: "a", RefreshToken: "r"}))
	creds, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", creds.AccessToken)

	require.NoError(t, store.Clear())
	creds, err = store.Load()
	require.NoError(t, err)
	assert.True(t, creds.Empty())
}
