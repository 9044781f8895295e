// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package music aggregates the track, artist and genre collections into a
// single library view.
package music

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
)

// Library is the aggregate payload produced by the music fetch plan. The
// JSON shape matches the cached envelope written by the orchestrator.
type Library struct {
	Tracks  []api.Document `json:"music"`
	Artists []api.Document `json:"artists"`
	Genres  []api.Document `json:"genres"`
}

// Rollup is a name/count pair used by the artist and genre summaries.
type Rollup struct {
	Name  string
	Count int
}

// ParseLibrary decodes the aggregate payload. Each member holds the raw
// documents envelope from its sub-fetch.
func ParseLibrary(payload []byte) (Library, error) {
	var envelope struct {
		Music   json.RawMessage `json:"music"`
		Artists json.RawMessage `json:"artists"`
		Genres  json.RawMessage `json:"genres"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Library{}, fmt.Errorf("music: parsing library payload: %w", err)
	}

	lib := Library{}
	var err error
	if lib.Tracks, err = parseDocuments(envelope.Music); err != nil {
		return Library{}, err
	}
	if lib.Artists, err = parseDocuments(envelope.Artists); err != nil {
		return Library{}, err
	}
	if lib.Genres, err = parseDocuments(envelope.Genres); err != nil {
		return Library{}, err
	}
	return lib, nil
}

func parseDocuments(raw json.RawMessage) ([]api.Document, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var envelope struct {
		Documents []api.Document `json:"documents"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("music: parsing documents: %w", err)
	}
	return envelope.Documents, nil
}

// ByArtist returns track counts per artist, most tracks first, ties broken
// by name. Tracks without an artist field roll up under "unknown".
func (l Library) ByArtist() []Rollup {
	return rollup(l.Tracks, "artist")
}

// ByGenre returns track counts per genre, most tracks first, ties broken by
// name.
func (l Library) ByGenre() []Rollup {
	return rollup(l.Tracks, "genre")
}

func rollup(tracks []api.Document, field string) []Rollup {
	counts := make(map[string]int)
	for _, track := range tracks {
		name, _ := track.Fields[field].(string)
		if name == "" {
			name = "unknown"
		}
		counts[name]++
	}

	rollups := make([]Rollup, 0, len(counts))
	for name, count := range counts {
		rollups = append(rollups, Rollup{Name: name, Count: count})
	}

	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].Count != rollups[j].Count {
			return rollups[i].Count > rollups[j].Count
		}
		return strings.ToLower(rollups[i].Name) < strings.ToLower(rollups[j].Name)
	})

	return rollups
}
