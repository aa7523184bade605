package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ECB2020/Hobyah-sub001/internal/config"
)

func TestOutPath(t *testing.T) {
	t.Run("alongside the input", func(t *testing.T) {
		cfg = config.Default()
		assert.Equal(t, filepath.Join("runs", "demo_si.PRN"),
			outPath(filepath.Join("runs", "demo.PRN"), "_si.PRN"))
		assert.Equal(t, filepath.Join("runs", "demo.snapshot.json"),
			outPath(filepath.Join("runs", "demo.PRN"), ".snapshot.json"))
	})

	t.Run("honors the output directory", func(t *testing.T) {
		cfg = config.Default()
		cfg.Output.Dir = "out"
		assert.Equal(t, filepath.Join("out", "demo_si.PRN"),
			outPath(filepath.Join("runs", "demo.PRN"), "_si.PRN"))
	})
}

func TestConvertedSuffix(t *testing.T) {
	cfg = config.Default()
	assert.Equal(t, "_si.PRN", convertedSuffix())
	cfg.Conversion.ToUS = true
	assert.Equal(t, "_us.PRN", convertedSuffix())
	assert.False(t, engineOptions().ToSI)
}

func TestReadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.PRN")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\nthree\n"), 0o644))

	lines, raw, err := readReport(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
	assert.Contains(t, raw, "\r\n") // raw text untouched for diffing

	_, _, err = readReport(filepath.Join(t.TempDir(), "missing.PRN"))
	assert.Error(t, err)
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.PRN")
	require.NoError(t, writeLines(path, []string{"a", "b"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}
