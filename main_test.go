package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemoThenAnalyze(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "demo", "--out", dir, "--samples", "80", "--seed", "3", "--mismatches", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 80 samples")
	for _, name := range []string{"TagA.csv", "TagB.csv", "position.csv"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	svg := filepath.Join(dir, "contacts.svg")
	out, err = execute(t, "--dir", dir, "--no-ui", "--log-level", "error", "--svg", svg)
	require.NoError(t, err)
	assert.Contains(t, out, "Contact IDs from Tag A: [B]")
	assert.Contains(t, out, "Contact IDs from Tag B: [A]")
	assert.Contains(t, out, "Uninterrupted sessions between tag A and B within 1.5 meters:")
	assert.Contains(t, out, "Total contact duration within 1.5 meters:")
	assert.NotContains(t, out, "All distances between Tag A and Tag B match.")

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestAnalyzeYAML(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "demo", "--out", dir, "--samples", "50", "--duplicate-ids")
	require.NoError(t, err)

	out, err := execute(t, "--dir", dir, "--no-ui", "--log-level", "error", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "correction")
	assert.Contains(t, out, "detected: true")
}

func TestAnalyzeErrors(t *testing.T) {
	_, err := execute(t, "--dir", t.TempDir(), "--no-ui", "--log-level", "error")
	assert.Error(t, err, "missing logs")

	_, err = execute(t, "--no-ui", "--detect", "guess")
	assert.ErrorContains(t, err, "unknown detect mode")

	_, err = execute(t, "--no-ui", "--tags", "1")
	assert.ErrorContains(t, err, "tag count")
}

func TestTagFlagsResolveAgainstDir(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"tag-a", "tag-b", "position"} {
		fl := cmd.Flags().Lookup(name)
		require.NotNil(t, fl, name)
		assert.Contains(t, fl.Usage, "relative to --dir", name)
	}

	dir := t.TempDir()
	_, err := execute(t, "demo", "--out", dir, "--samples", "20")
	require.NoError(t, err)
	require.NoError(t, os.Rename(filepath.Join(dir, "TagA.csv"), filepath.Join(dir, "first.csv")))

	out, err := execute(t, "--dir", dir, "--tag-a", "first.csv", "--no-ui", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Contact IDs from Tag A: [B]")
}
