// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConfigErrors(t *testing.T) {
	_, err := New(Config{Token: "tok"})
	assert.ErrorIs(t, err, ErrBaseURLNotSet)

	_, err = New(Config{BaseURL: "https://docs.example.com"})
	assert.ErrorIs(t, err, ErrTokenNotSet)
}

func TestListCollection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/collections/notes-1/documents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents":[{"id":"d1","title":"First"},{"id":"d2","title":"Second","tags":["a"]}]}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Token: "tok"})
	require.NoError(t, err)
	defer c.Close()

	docs, err := c.ListCollection(context.Background(), "notes-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, docs, 2)
	assert.Equal(t, "First", docs[0].Title)
	assert.Equal(t, []string{"a"}, docs[1].Tags)
}

func TestSearchDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "guitar", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents":[{"id":"d9","title":"Guitar practice"}]}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Token: "tok"})
	require.NoError(t, err)
	defer c.Close()

	docs, err := c.SearchDocuments(context.Background(), "guitar")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d9", docs[0].ID)
}

func TestGetBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/d1/blocks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"blocks":[{"id":"b1","document_id":"d1","type":"text","text":"see [[Other Note]]"}]}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Token: "tok"})
	require.NoError(t, err)
	defer c.Close()

	blocks, err := c.GetBlocks(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Text, "[[Other Note]]")
}

func TestFriendlyErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c, err := New(Config{BaseURL: srv.URL, Token: "tok"})
			require.NoError(t, err)
			defer c.Close()

			_, err = c.ListCollection(context.Background(), "c1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
