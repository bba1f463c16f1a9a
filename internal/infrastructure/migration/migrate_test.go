package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMigrations(t *testing.T) {
	t.Run("lists up migrations in order", func(t *testing.T) {
		dir := t.TempDir()

		files := []string{
			"000002_catalog.up.sql",
			"000002_catalog.down.sql",
			"000001_identity.up.sql",
			"000001_identity.down.sql",
			"README.md",
		}
		for _, name := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0644))
		}

		names, err := ListMigrations(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"000001_identity.up.sql",
			"000002_catalog.up.sql",
		}, names)
	})

	t.Run("empty directory yields no migrations", func(t *testing.T) {
		names, err := ListMigrations(t.TempDir())

		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("missing directory returns error", func(t *testing.T) {
		_, err := ListMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
		assert.Error(t, err)
	})
}
