package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestAbout(t *testing.T) {
	out := execute(t, "about")
	assert.Contains(t, out, version)
	assert.Contains(t, out, docsURL)
}

func TestRoll_WritesImage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "roll.png")

	out := execute(t, "roll",
		"--assets", dir,
		"--log-level", "error",
		"--tet", "24",
		"--width", "900",
		"--height", "500",
		"--format", "png",
		"-o", file,
	)
	assert.Contains(t, out, "Pitch:")
	assert.Contains(t, out, "(24-TET)")

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
}

func TestCheck_ReportsMissingImages(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"check", "--assets", t.TempDir(), "--log-level", "error"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "8 of 8")
	assert.Contains(t, out.String(), "ERR breve")
}
