// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "craftboard.yaml"), []byte(content), 0o600))
	t.Setenv("XDG_CONFIG_HOME", dir)
	_, err := Load("")
	require.NoError(t, err)
}

func TestGetString(t *testing.T) {
	writeConfig(t, `
api:
  url: https://docs.example.com
  token: secret
output: text
`)

	tests := []struct {
		name string
		key  string
		def  []string
		want string
	}{
		{name: "nested key", key: "api.url", want: "https://docs.example.com"},
		{name: "top level key", key: "output", want: "text"},
		{name: "missing key with default", key: "nope", def: []string{"fallback"}, want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetString(tt.key, tt.def...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetString_MissingNoDefault(t *testing.T) {
	writeConfig(t, "output: text\n")
	_, err := GetString("missing")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	writeConfig(t, `
cache:
  expiry: 24
padding: 2
`)

	got, err := GetInt("cache.expiry")
	assert.NoError(t, err)
	assert.Equal(t, 24, got)

	got, err = GetInt("cache.clean", 168)
	assert.NoError(t, err)
	assert.Equal(t, 168, got)
}

func TestGetStringSlice(t *testing.T) {
	writeConfig(t, `
collections:
  notes:
    - abc123
    - def456
  tasks: solo
`)

	got, err := GetStringSlice("collections.notes")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc123", "def456"}, got)

	// A scalar is promoted to a single-element slice.
	got, err = GetStringSlice("collections.tasks")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, got)
}

func TestNamespacePrecedence(t *testing.T) {
	dir := t.TempDir()
	content := `
output: text
tasks:
  output: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "craftboard.yaml"), []byte(content), 0o600))
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, err := Load("tasks")
	require.NoError(t, err)

	got, err := GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "json", got)
}
