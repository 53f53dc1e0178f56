package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err, "unexpected error loading defaults")
		require.Equal(t, 3, cfg.NgramSize, "unexpected default ngram size")
		require.Equal(t, 2, cfg.MaxDistance, "unexpected default max distance")
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
		require.NoError(t, err, "a missing file should not be an error")
		require.Equal(t, 3, cfg.NgramSize, "unexpected default ngram size")
	})
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	contents := "search:\n  ngramSize: 4\n  maxDistance: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644), "failed writing fixture config")

	cfg, err := Load(path)
	require.NoError(t, err, "unexpected error loading config")
	require.Equal(t, 4, cfg.NgramSize, "unexpected ngram size from file")
	require.Equal(t, 1, cfg.MaxDistance, "unexpected max distance from file")
}

func TestLoadPartialYAMLKeepsOtherDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  ngramSize: 5\n"), 0o644), "failed writing fixture config")

	cfg, err := Load(path)
	require.NoError(t, err, "unexpected error loading config")
	require.Equal(t, 5, cfg.NgramSize, "unexpected ngram size from file")
	require.Equal(t, 2, cfg.MaxDistance, "expected max distance to keep its default")
}
