// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/cachestore"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/fetch"
)

// Cache key prefixes, one per view. The full key appends the collection IDs
// in use so that a config change never serves another setup's payload.
const (
	notesCachePrefix = "notes-cache"
	tasksCachePrefix = "tasks-cache"
	musicCachePrefix = "music-cache"
	cardsCachePrefix = "cards-cache"
	tagsCachePrefix  = "tags-cache"
)

// NotesPlan fans out one list call per configured notes collection.
func NotesPlan(client *api.Client) fetch.Plan {
	return listPlan(client, notesCachePrefix, CollectionIDs("collections.notes", "notes"))
}

// TasksPlan fans out one list call per configured tasks collection.
func TasksPlan(client *api.Client) fetch.Plan {
	return listPlan(client, tasksCachePrefix, CollectionIDs("collections.tasks", "tasks"))
}

// CardsPlan fans out one list call per configured cards collection.
func CardsPlan(client *api.Client) fetch.Plan {
	return listPlan(client, cardsCachePrefix, CollectionIDs("collections.cards", "cards"))
}

// MusicPlan issues the three parallel library sub-requests. The sub names
// are fixed so the aggregate payload always has the music/artists/genres
// members the library parser expects.
func MusicPlan(client *api.Client) fetch.Plan {
	tracks := first(CollectionIDs("collections.music.tracks", "tracks"))
	artists := first(CollectionIDs("collections.music.artists", "artists"))
	genres := first(CollectionIDs("collections.music.genres", "genres"))

	subs := []fetch.Sub{
		ListSub(client, tracks),
		ListSub(client, artists),
		ListSub(client, genres),
	}
	subs[0].Name = "music"
	subs[1].Name = "artists"
	subs[2].Name = "genres"

	return fetch.Plan{
		Key:  cachestore.Key(musicCachePrefix, tracks, artists, genres),
		Subs: subs,
	}
}

// TagsPlan spans every configured collection so tag counts cover the whole
// workspace.
func TagsPlan(client *api.Client) fetch.Plan {
	var ids []string
	ids = append(ids, CollectionIDs("collections.notes", "notes")...)
	ids = append(ids, CollectionIDs("collections.tasks", "tasks")...)
	ids = append(ids, CollectionIDs("collections.cards", "cards")...)

	return listPlan(client, tagsCachePrefix, ids)
}

// PlanFor maps a view name to its plan builder. Used by cache diff and the
// board, which address views by name.
func PlanFor(view string, client *api.Client) (fetch.Plan, error) {
	switch view {
	case "notes":
		return NotesPlan(client), nil
	case "tasks":
		return TasksPlan(client), nil
	case "music":
		return MusicPlan(client), nil
	case "cards":
		return CardsPlan(client), nil
	case "tags":
		return TagsPlan(client), nil
	default:
		return fetch.Plan{}, fmt.Errorf("unknown view: %s", view)
	}
}

func listPlan(client *api.Client, prefix string, ids []string) fetch.Plan {
	subs := make([]fetch.Sub, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, ListSub(client, id))
	}
	return fetch.Plan{
		Key:  cachestore.Key(prefix, ids...),
		Subs: subs,
	}
}

func first(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
