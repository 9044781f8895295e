// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cachestore

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
)

// Entry describes a cached payload on disk. Key is the clear-text key;
// EncodedKey is the hashed filename.
type Entry struct {
	Key        string
	EncodedKey string
	Path       string
	Timestamp  time.Time
	Size       int64
}

// envelope is the on-disk shape of a cache entry. The clear-text key is kept
// inside so administrative listings can show it; the filename is a hash.
type envelope struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // epoch millis
}

// Key derives a cache key from a view prefix and the resource IDs in use,
// e.g. Key("music-cache", "A", "B", "C") -> "music-cache-A-B-C".
func Key(prefix string, ids ...string) string {
	if len(ids) == 0 {
		return prefix
	}
	return prefix + "-" + strings.Join(ids, "-")
}

// Dir resolves the base cache directory.
// Precedence:
//  1. CRAFTBOARD_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/craftboard
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("CRAFTBOARD_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "craftboard"), true
	}
	return "", false
}

// Enabled returns true unless CRAFTBOARD_CACHE explicitly disables it
// ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("CRAFTBOARD_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// EnsureBaseDir creates the base cache directory if caching is enabled and a
// base path can be resolved. Returns the path, whether it is usable, and an
// error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

// Store reads and writes freshness-checked cache entries. A zero expiry
// means entries never expire. Storage failures are never fatal; they degrade
// to cache misses.
type Store struct {
	expiry time.Duration
	now    func() time.Time
}

// New returns a Store with the given expiry window.
func New(expiry time.Duration) *Store {
	return &Store{expiry: expiry, now: time.Now}
}

// Get returns the cached payload for key, or (nil, false) if the entry is
// absent, unreadable, unparseable, or expired. Expired entries are evicted.
func (s *Store) Get(key string) ([]byte, bool) {
	if !Enabled() {
		return nil, false
	}

	p, ok := entryPath(key)
	if !ok {
		return nil, false
	}

	raw, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.WithError(err).Warnf("unparseable cache entry %s", p)
		return nil, false
	}

	if s.expiry > 0 {
		age := s.now().Sub(time.UnixMilli(env.Timestamp))
		if age >= s.expiry {
			if err := os.Remove(p); err == nil {
				log.Debugf("evicted expired cache entry %s", p)
			} else {
				log.WithError(err).Warnf("failed to evict cache entry %s", p)
			}
			return nil, false
		}
	}

	return env.Data, true
}

// Set stores data under key with the current timestamp, overwriting any
// existing entry.
func (s *Store) Set(key string, data []byte) error {
	if !Enabled() {
		return nil // treat as disabled.
	}
	base, ok := Dir()
	if !ok {
		return nil // treat as disabled.
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	env := envelope{
		Key:       key,
		Data:      json.RawMessage(data),
		Timestamp: s.now().UnixMilli(),
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	p := filepath.Join(base, encodeKey(key))
	if err := os.WriteFile(p, raw, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	return nil
}

// Clear removes the entry for key. Clearing an absent key is not an error.
func (s *Store) Clear(key string) error {
	p, ok := entryPath(key)
	if !ok {
		return nil
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cache entry: %w", err)
	}
	return nil
}

// ClearAll removes every entry in the cache directory.
func (s *Store) ClearAll() error {
	base, ok := Dir()
	if !ok {
		return nil
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(base, e.Name())); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", e.Name())
		}
	}
	return nil
}

// Entries lists the current cache contents for administrative display.
func (s *Store) Entries() ([]Entry, error) {
	base, ok := Dir()
	if !ok {
		return nil, nil
	}

	var result []Entry
	dirEntries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		p := filepath.Join(base, de.Name())
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			log.Debugf("skipping unparseable cache file %s", de.Name())
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		result = append(result, Entry{
			Key:        env.Key,
			EncodedKey: de.Name(),
			Path:       p,
			Timestamp:  time.UnixMilli(env.Timestamp),
			Size:       info.Size(),
		})
	}

	return result, nil
}

// Purge removes cache files older than the provided duration. If olderThan
// <= 0 or the cache dir cannot be resolved, it is a no-op.
func Purge(olderThan time.Duration) error {
	if olderThan <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}
	if err := filepath.Walk(base, func(path string, info os.FileInfo, _ error) error {
		if info == nil {
			return nil
		}
		if !info.IsDir() && time.Since(info.ModTime()) > olderThan {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// entryPath returns the absolute path where the entry for key would live.
func entryPath(key string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	return filepath.Join(base, encodeKey(key)), true
}

// encodeKey hashes k with MD5 and returns the hex string.
func encodeKey(k string) string {
	h := md5.New()
	_, _ = h.Write([]byte(k))
	return hex.EncodeToString(h.Sum(nil))
}
