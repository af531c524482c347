// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	ctx := log.WithContext(t.Context(), log.New(io.Discard))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestRootJSONOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".travis.yml"), []byte(`
environments:
  - linux
build:
  linux: make
deploy: echo bye
`), 0o644))

	out, err := executeRoot(t, "-C", dir, "-o", "json")
	require.NoError(t, err)

	var model struct {
		Environments []struct {
			Labels []string `json:"labels"`
		} `json:"environments"`
		Tasks map[string][]string `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &model))

	require.Len(t, model.Environments, 1)
	assert.Equal(t, []string{"linux"}, model.Environments[0].Labels)
	assert.Equal(t, []string{"echo bye"}, model.Tasks["deploy"])
}

func TestRootYAMLOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".travis.yml"), []byte("build: make\n"), 0o644))

	out, err := executeRoot(t, "-C", dir, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "build:")
	assert.Contains(t, out, "make")
}

func TestRootUnsupportedOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".travis.yml"), []byte("build: make\n"), 0o644))

	_, err := executeRoot(t, "-C", dir, "-o", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported output format: "bogus"`)
}

func TestRootModelNotFound(t *testing.T) {
	_, err := executeRoot(t, "-C", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a literate project")
}

func TestRootSchema(t *testing.T) {
	out, err := executeRoot(t, "--schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"schema-version"`)
}

func TestRootConfigFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".acme.yml"), []byte("script: make\n"), 0o644))

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("schema-version: v0\nbase-name: acme\nbuild-ids: script\n"), 0o644))

	out, err := executeRoot(t, "-C", dir, "--config", configPath, "-o", "json")
	require.NoError(t, err)

	var model struct {
		Build []struct {
			Commands []string `json:"commands"`
		} `json:"build"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &model))
	require.Len(t, model.Build, 1)
	assert.Equal(t, []string{"make"}, model.Build[0].Commands)
}

func TestRootBadLogLevel(t *testing.T) {
	_, err := executeRoot(t, "-l", "bogus")
	require.Error(t, err)
}
