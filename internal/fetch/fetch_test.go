// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/cachestore"
)

func newOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	t.Setenv("CRAFTBOARD_CACHE_DIR", t.TempDir())
	return New(cachestore.New(24 * time.Hour))
}

func staticSub(name, payload string) Sub {
	return Sub{
		Name: name,
		Run: func(ctx context.Context) (json.RawMessage, error) {
			return json.RawMessage(payload), nil
		},
	}
}

func TestFetch_AggregatesAndCaches(t *testing.T) {
	o := newOrchestrator(t)

	res, err := o.Fetch(context.Background(), Plan{
		Key: cachestore.Key("music-cache", "A", "B", "C"),
		Subs: []Sub{
			staticSub("music", `[{"id":"t1"}]`),
			staticSub("artists", `[{"id":"a1"}]`),
			staticSub("genres", `["jazz"]`),
		},
	})
	require.NoError(t, err)
	assert.False(t, res.FromCache)

	doc := gjson.ParseBytes(res.Data)
	assert.Equal(t, "t1", doc.Get("music.0.id").String())
	assert.Equal(t, "jazz", doc.Get("genres.0").String())

	// Written through: present in the store.
	cached, ok := o.Store.Get("music-cache-A-B-C")
	require.True(t, ok)
	assert.JSONEq(t, string(res.Data), string(cached))
}

func TestFetch_CacheHitShortCircuits(t *testing.T) {
	o := newOrchestrator(t)
	require.NoError(t, o.Store.Set("notes-cache-N", []byte(`{"documents":[]}`)))

	var calls atomic.Int64
	res, err := o.Fetch(context.Background(), Plan{
		Key: "notes-cache-N",
		Subs: []Sub{{
			Name: "documents",
			Run: func(ctx context.Context) (json.RawMessage, error) {
				calls.Add(1)
				return json.RawMessage(`[]`), nil
			},
		}},
	})
	require.NoError(t, err)
	assert.True(t, res.FromCache)
	assert.Equal(t, int64(0), calls.Load(), "no network activity on a cache hit")
}

func TestFetch_ForceBypassesValidCache(t *testing.T) {
	o := newOrchestrator(t)
	require.NoError(t, o.Store.Set("notes-cache-N", []byte(`{"documents":["stale"]}`)))

	res, err := o.Fetch(context.Background(), Plan{
		Key:   "notes-cache-N",
		Force: true,
		Subs:  []Sub{staticSub("documents", `["fresh"]`)},
	})
	require.NoError(t, err)
	assert.False(t, res.FromCache)

	cached, ok := o.Store.Get("notes-cache-N")
	require.True(t, ok)
	assert.JSONEq(t, `{"documents":["fresh"]}`, string(cached))
}

func TestFetch_DryLeavesCacheUntouched(t *testing.T) {
	o := newOrchestrator(t)
	require.NoError(t, o.Store.Set("notes-cache-N", []byte(`{"documents":["stale"]}`)))

	res, err := o.Fetch(context.Background(), Plan{
		Key:   "notes-cache-N",
		Force: true,
		Dry:   true,
		Subs:  []Sub{staticSub("documents", `["fresh"]`)},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"documents":["fresh"]}`, string(res.Data))

	cached, ok := o.Store.Get("notes-cache-N")
	require.True(t, ok)
	assert.JSONEq(t, `{"documents":["stale"]}`, string(cached))
}

func TestFetch_PartialFailureLeavesCacheUntouched(t *testing.T) {
	o := newOrchestrator(t)
	require.NoError(t, o.Store.Set("music-cache-A", []byte(`{"old":true}`)))

	boom := errors.New("boom")
	_, err := o.Fetch(context.Background(), Plan{
		Key:   "music-cache-A",
		Force: true,
		Subs: []Sub{
			staticSub("music", `[]`),
			{Name: "artists", Run: func(ctx context.Context) (json.RawMessage, error) {
				return nil, boom
			}},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	cached, ok := o.Store.Get("music-cache-A")
	require.True(t, ok)
	assert.JSONEq(t, `{"old":true}`, string(cached))
}

func TestFetch_FailureCancelsSiblings(t *testing.T) {
	o := newOrchestrator(t)

	_, err := o.Fetch(context.Background(), Plan{
		Key: "k",
		Subs: []Sub{
			{Name: "fails", Run: func(ctx context.Context) (json.RawMessage, error) {
				return nil, errors.New("boom")
			}},
			{Name: "slow", Run: func(ctx context.Context) (json.RawMessage, error) {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return json.RawMessage(`[]`), nil
				}
			}},
		},
	})
	assert.Error(t, err)

	_, ok := o.Store.Get("k")
	assert.False(t, ok)
}

func TestFetch_ProgressCounts(t *testing.T) {
	o := newOrchestrator(t)

	_, err := o.Fetch(context.Background(), Plan{
		Key: "k",
		Subs: []Sub{
			staticSub("a", `1`),
			staticSub("b", `2`),
			staticSub("c", `3`),
		},
	})
	require.NoError(t, err)

	done, total := o.Progress.Counts()
	assert.Equal(t, int64(3), done)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, 1.0, o.Progress.Fraction())
}
