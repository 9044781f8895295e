// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Driller resolves a dotted attribute path against a JSON document. Beyond
// plain gjson paths it supports explicit array indexing with [n] and drills
// through single-element arrays, so "links.target" works whether links is an
// object or a one-element array of objects. A path that cannot be resolved
// returns the empty result (Value() == nil).
func Driller(doc string, path string) gjson.Result {
	result := gjson.Parse(doc)
	if path == "" {
		return result
	}

	for _, seg := range strings.Split(path, ".") {
		key, idx, hasIdx := splitIndex(seg)

		if key != "" {
			// Drill through a single-element array before applying a key.
			if result.IsArray() {
				arr := result.Array()
				if len(arr) != 1 {
					return gjson.Result{}
				}
				result = arr[0]
			}
			result = result.Get(key)
		}

		if hasIdx {
			if !result.IsArray() {
				return gjson.Result{}
			}
			arr := result.Array()
			if idx < 0 || idx >= len(arr) {
				return gjson.Result{}
			}
			result = arr[idx]
		}

		if !result.Exists() {
			return gjson.Result{}
		}
	}

	// A trailing single-element array collapses to its element.
	if result.IsArray() {
		if arr := result.Array(); len(arr) == 1 {
			result = arr[0]
		}
	}

	return result
}

// splitIndex splits a path segment like "items[2]" into its key and index
// parts. A malformed index suffix is treated as part of the key.
func splitIndex(seg string) (key string, idx int, hasIdx bool) {
	open := strings.IndexByte(seg, '[')
	if open < 0 || !strings.HasSuffix(seg, "]") {
		return seg, 0, false
	}
	n, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil {
		return seg, 0, false
	}
	return seg[:open], n, true
}
