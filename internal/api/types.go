// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import "time"

// Document is a record in a remote collection. The application does not own
// its canonical state, only a cached, possibly-stale copy. Fields carries
// the collection-specific properties (due dates, priorities, deck names and
// so on) whose shape varies per collection.
type Document struct {
	ID         string         `json:"id"`
	Collection string         `json:"collection,omitempty"`
	Title      string         `json:"title"`
	Tags       []string       `json:"tags,omitempty"`
	Created    *time.Time     `json:"created,omitempty"`
	Edited     *time.Time     `json:"edited,omitempty"`
	Fields     map[string]any `json:"fields,omitempty"`
}

// Block is a unit of document content. Only the text payload is consumed
// here (for link extraction); rendering is out of scope.
type Block struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Type       string `json:"type"`
	Text       string `json:"text,omitempty"`
}

// documentsResponse is the wire envelope for document list endpoints.
type documentsResponse struct {
	Documents []Document `json:"documents"`
}

// blocksResponse is the wire envelope for the blocks endpoint.
type blocksResponse struct {
	Blocks []Block `json:"blocks"`
}
