//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"courtbook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWatchList(t *testing.T) {
	t.Run("missing file writes and returns an empty default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "watch.yaml")

		wl, err := config.LoadWatchList(path)
		require.NoError(t, err)
		assert.Empty(t, wl.Targets)

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("round trip preserves targets", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "watch.yaml")

		saved := &config.WatchList{Targets: []config.WatchTarget{
			{
				ID:        "padel-evenings",
				CourtID:   7,
				Days:      []string{"Mon", "Wed", "Fri"},
				TimeFrom:  "18:00",
				TimeTo:    "22:00",
				DaysAhead: 14,
				ChatID:    12345,
			},
		}}
		require.NoError(t, config.SaveWatchList(path, saved))

		loaded, err := config.LoadWatchList(path)
		require.NoError(t, err)
		assert.Equal(t, saved.Targets, loaded.Targets)
	})

	t.Run("normalize fills missing defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "watch.yaml")
		require.NoError(t, os.WriteFile(path, []byte("targets:\n  - id: sparse\n    court_id: 3\n"), 0o600))

		wl, err := config.LoadWatchList(path)
		require.NoError(t, err)
		require.Len(t, wl.Targets, 1)

		target := wl.Targets[0]
		assert.Equal(t, 7, target.DaysAhead)
		assert.Equal(t, "08:00", target.TimeFrom)
		assert.Equal(t, "23:00", target.TimeTo)
	})

	t.Run("saved file has owner-only permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "watch.yaml")
		require.NoError(t, config.SaveWatchList(path, config.DefaultWatchList()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := config.LoadWatchList("")
		assert.Error(t, err)
		assert.Error(t, config.SaveWatchList("", config.DefaultWatchList()))
	})
}
