package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.False(t, cfg.Options.PerClass)
	assert.Equal(t, ".", cfg.Options.OutputDir)
	assert.True(t, cfg.Options.OpenTag)
}

func TestLoadFileMerges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phpgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options:\n  perClass: true\n  outputDir: gen\n  openTag: false\n"), 0o644))

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))
	assert.True(t, cfg.Options.PerClass)
	assert.Equal(t, "gen", cfg.Options.OutputDir)
	assert.False(t, cfg.Options.OpenTag)
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phpgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options:\n  outputDir: gen\n"), 0o644))

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, "gen", cfg.Options.OutputDir)
	assert.True(t, cfg.Options.OpenTag, "absent openTag keeps the default")
	assert.False(t, cfg.Options.PerClass)
}

func TestLoadFileErrors(t *testing.T) {
	cfg := New()
	require.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")))

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\t{not yaml"), 0o644))
	require.Error(t, cfg.LoadFile(path))
}
