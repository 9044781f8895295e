// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package tags builds the tag explorer index across collections.
package tags

import (
	"hash/fnv"
	"sort"
	"strings"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
)

// Entry is one row of the tag index.
type Entry struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// palette holds the colors a tag can hash to. Chosen to read on both light
// and dark terminal backgrounds.
var palette = []string{
	"#e06c75",
	"#98c379",
	"#e5c07b",
	"#61afef",
	"#c678dd",
	"#56b6c2",
	"#d19a66",
}

// Index counts documents per tag across all provided document sets. Tags
// that appear on no document never enter the index, so zero-count entries
// cannot occur. Sorted by count descending, ties broken by tag name.
func Index(docSets ...[]api.Document) []Entry {
	counts := make(map[string]int)
	for _, docs := range docSets {
		for _, doc := range docs {
			for _, tag := range doc.Tags {
				if tag == "" {
					continue
				}
				counts[tag]++
			}
		}
	}

	entries := make([]Entry, 0, len(counts))
	for tag, count := range counts {
		entries = append(entries, Entry{Tag: tag, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Tag < entries[j].Tag
	})

	return entries
}

// WithTag returns the documents carrying the given tag, case-insensitively.
func WithTag(docs []api.Document, tag string) []api.Document {
	//nolint:prealloc
	var matched []api.Document
	for _, doc := range docs {
		for _, t := range doc.Tags {
			if strings.EqualFold(t, tag) {
				matched = append(matched, doc)
				break
			}
		}
	}
	return matched
}

// ColorHash maps a tag to a stable palette color. The same tag always gets
// the same color, in every view, across runs.
func ColorHash(tag string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tag))
	return palette[h.Sum32()%uint32(len(palette))]
}
