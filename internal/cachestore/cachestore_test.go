// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cachestore

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, expiry time.Duration) *Store {
	t.Helper()
	t.Setenv("CRAFTBOARD_CACHE_DIR", t.TempDir())
	os.Unsetenv("CRAFTBOARD_CACHE")
	return New(expiry)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "music-cache-A-B-C", Key("music-cache", "A", "B", "C"))
	assert.Equal(t, "tags-cache", Key("tags-cache"))
}

func TestGetAfterSet(t *testing.T) {
	s := newTestStore(t, 24*time.Hour)

	payload := []byte(`{"music":[{"id":"m1"}],"artists":[],"genres":[]}`)
	require.NoError(t, s.Set("music-cache-A-B-C", payload))

	got, ok := s.Get("music-cache-A-B-C")
	require.True(t, ok)
	assert.JSONEq(t, string(payload), string(got))
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t, time.Hour)
	_, ok := s.Get("never-written")
	assert.False(t, ok)
}

func TestGetExpiredEvicts(t *testing.T) {
	s := newTestStore(t, 24*time.Hour)

	require.NoError(t, s.Set("notes-cache-X", []byte(`["a"]`)))

	// Move the clock 25 hours forward. The read must miss and the file must
	// be gone afterwards.
	s.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	_, ok := s.Get("notes-cache-X")
	assert.False(t, ok)

	p, _ := entryPath("notes-cache-X")
	_, err := os.Stat(p)
	assert.True(t, os.IsNotExist(err))
}

func TestGetWithinExpiry(t *testing.T) {
	s := newTestStore(t, 24*time.Hour)

	require.NoError(t, s.Set("notes-cache-X", []byte(`["a"]`)))

	s.now = func() time.Time { return time.Now().Add(time.Millisecond) }
	got, ok := s.Get("notes-cache-X")
	require.True(t, ok)
	assert.Equal(t, `["a"]`, string(got))
}

func TestZeroExpiryNeverExpires(t *testing.T) {
	s := newTestStore(t, 0)

	require.NoError(t, s.Set("graph-cache-G", []byte(`{"nodes":[]}`)))

	s.now = func() time.Time { return time.Now().Add(10 * 365 * 24 * time.Hour) }
	got, ok := s.Get("graph-cache-G")
	require.True(t, ok)
	assert.Equal(t, `{"nodes":[]}`, string(got))
}

func TestSetOverwrites(t *testing.T) {
	s := newTestStore(t, time.Hour)

	require.NoError(t, s.Set("k", []byte(`1`)))
	require.NoError(t, s.Set("k", []byte(`2`)))

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, `2`, string(got))
}

func TestClear(t *testing.T) {
	s := newTestStore(t, time.Hour)

	require.NoError(t, s.Set("k", []byte(`1`)))
	require.NoError(t, s.Clear("k"))

	_, ok := s.Get("k")
	assert.False(t, ok)

	// Clearing an absent key is not an error.
	assert.NoError(t, s.Clear("k"))
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t, time.Hour)

	require.NoError(t, s.Set("a", []byte(`1`)))
	require.NoError(t, s.Set("b", []byte(`2`)))
	require.NoError(t, s.ClearAll())

	_, ok := s.Get("a")
	assert.False(t, ok)
	_, ok = s.Get("b")
	assert.False(t, ok)
}

func TestUnparseableEntryIsMiss(t *testing.T) {
	s := newTestStore(t, time.Hour)

	require.NoError(t, s.Set("k", []byte(`1`)))
	p, _ := entryPath("k")
	require.NoError(t, os.WriteFile(p, []byte("not json"), 0o600))

	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestDisabledViaEnv(t *testing.T) {
	s := newTestStore(t, time.Hour)
	t.Setenv("CRAFTBOARD_CACHE", "0")

	require.NoError(t, s.Set("k", []byte(`1`)))
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestEntries(t *testing.T) {
	s := newTestStore(t, time.Hour)

	require.NoError(t, s.Set("tasks-cache-T1", []byte(`[]`)))
	require.NoError(t, s.Set("notes-cache-N1", []byte(`[]`)))

	entries, err := s.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	keys := []string{entries[0].Key, entries[1].Key}
	assert.ElementsMatch(t, []string{"tasks-cache-T1", "notes-cache-N1"}, keys)
	for _, e := range entries {
		assert.NotZero(t, e.Size)
		assert.False(t, e.Timestamp.IsZero())
	}
}
