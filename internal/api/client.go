// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package api is the client for the remote document/collection service.
// Craftboard is read-mostly: it fetches collections, documents, and blocks,
// and never writes back.
package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"resty.dev/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/config"
)

// Config is the connection configuration for the remote API.
type Config struct {
	BaseURL string
	Token   string
}

// Client wraps the HTTP transport with typed accessors for the endpoints
// craftboard consumes. No retry or backoff: a failed fetch is surfaced and
// retried only on explicit user action.
type Client struct {
	rc   *resty.Client
	host string
}

// ResolveConfig builds a Config using standard precedence: environment
// variables (CRAFTBOARD_API_URL, CRAFTBOARD_TOKEN) win over craftboard.yaml
// (api.url, api.token).
func ResolveConfig() Config {
	cfg := Config{}

	cfg.BaseURL = os.Getenv("CRAFTBOARD_API_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL, _ = config.GetString("api.url", "")
	}

	cfg.Token = os.Getenv("CRAFTBOARD_TOKEN")
	if cfg.Token == "" {
		cfg.Token, _ = config.GetString("api.token", "")
	}

	return cfg
}

// New validates cfg and returns a ready Client. Missing URL or token is a
// configuration error the caller should surface before any network call.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("set api.url in craftboard.yaml or CRAFTBOARD_API_URL: %w", ErrBaseURLNotSet)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("set api.token in craftboard.yaml or CRAFTBOARD_TOKEN: %w", ErrTokenNotSet)
	}

	host := cfg.BaseURL
	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.Token)

	return &Client{rc: rc, host: host}, nil
}

// Close releases transport resources.
func (c *Client) Close() error {
	return c.rc.Close()
}

// Host returns the API host for display and error context.
func (c *Client) Host() string {
	return c.host
}

// ListCollection returns the documents of a collection.
func (c *Client) ListCollection(ctx context.Context, collectionID string) ([]Document, error) {
	var body documentsResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/collections/" + url.PathEscape(collectionID) + "/documents")
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	if resp.IsError() {
		return nil, Friendly(resp.StatusCode(), responseBody(resp), ErrorContext{
			Host:       c.host,
			Collection: collectionID,
			Operation:  "list",
			Resource:   "documents",
		})
	}
	return body.Documents, nil
}

// SearchDocuments runs a cross-collection text search.
func (c *Client) SearchDocuments(ctx context.Context, query string) ([]Document, error) {
	var body documentsResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&body).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	if resp.IsError() {
		return nil, Friendly(resp.StatusCode(), responseBody(resp), ErrorContext{
			Host:      c.host,
			Operation: "search",
			Resource:  "documents",
		})
	}
	return body.Documents, nil
}

// GetDocument reads a single document.
func (c *Client) GetDocument(ctx context.Context, documentID string) (*Document, error) {
	var body Document
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/documents/" + url.PathEscape(documentID))
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	if resp.IsError() {
		return nil, Friendly(resp.StatusCode(), responseBody(resp), ErrorContext{
			Host:      c.host,
			Operation: "read",
			Resource:  "document " + documentID,
		})
	}
	return &body, nil
}

// GetBlocks returns the content blocks of a document.
func (c *Client) GetBlocks(ctx context.Context, documentID string) ([]Block, error) {
	var body blocksResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/documents/" + url.PathEscape(documentID) + "/blocks")
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	if resp.IsError() {
		return nil, Friendly(resp.StatusCode(), responseBody(resp), ErrorContext{
			Host:      c.host,
			Operation: "read",
			Resource:  "blocks of " + documentID,
		})
	}
	return body.Blocks, nil
}

// responseBody drains the raw body of an error response for inclusion in the
// failure message. Best effort only.
func responseBody(resp *resty.Response) string {
	if resp == nil || resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return ""
	}
	defer resp.RawResponse.Body.Close()
	b, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
