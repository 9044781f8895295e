// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	left := []byte(`{"documents":[{"id":"doc-1","title":"Sourdough Basics"}]}`)
	right := []byte(`{"documents":[{"id":"doc-1","title":"Sourdough Starter"}]}`)

	out, changed, err := Diff(left, right, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, out, "Sourdough Basics")
	assert.Contains(t, out, "Sourdough Starter")
}

func TestDiffIdentical(t *testing.T) {
	payload := []byte(`{"documents":[{"id":"doc-1"}]}`)

	out, changed, err := Diff(payload, payload, false)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, out)
}

func TestDiffInvalidJSON(t *testing.T) {
	_, _, err := Diff([]byte(`{`), []byte(`{}`), false)
	assert.Error(t, err)
}

func TestDiffDelta(t *testing.T) {
	left := []byte(`{"count":1}`)
	right := []byte(`{"count":2}`)

	out, changed, err := DiffDelta(left, right)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, out, "count")
}
