// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortKey is a single parsed --sort spec entry.
type sortKey struct {
	key           string
	descending    bool
	caseSensitive bool
}

// SortDataset sorts the result set in place per the provided spec. The spec
// is a comma separated list of output keys, each optionally prefixed with
// '-' for descending order and/or '!' for case-sensitive string comparison.
// Earlier keys win; later keys break ties. An empty spec leaves the dataset
// in its incoming order.
func SortDataset(resultSet []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	//nolint:prealloc
	var keys []sortKey
	for _, part := range strings.Split(spec, ",") {
		sk := sortKey{}
		for {
			if strings.HasPrefix(part, "-") {
				sk.descending = true
				part = strings.TrimPrefix(part, "-")
				continue
			}
			if strings.HasPrefix(part, "!") {
				sk.caseSensitive = true
				part = strings.TrimPrefix(part, "!")
				continue
			}
			break
		}
		if part == "" {
			continue
		}
		sk.key = part
		keys = append(keys, sk)
	}

	if len(keys) == 0 {
		return
	}

	// Stable so that rows equal under the spec keep their incoming order.
	sort.SliceStable(resultSet, func(i, j int) bool {
		for _, sk := range keys {
			c := compareValues(resultSet[i][sk.key], resultSet[j][sk.key], sk.caseSensitive)
			if c == 0 {
				continue
			}
			if sk.descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues compares two row values. Numeric comparison is used when
// both values are numeric, string comparison otherwise. Nil sorts last.
func compareValues(a, b interface{}, caseSensitive bool) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}

	na, aOK := asFloat64(a)
	nb, bOK := asFloat64(b)
	if aOK && bOK {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}

	sa := InterfaceToString(a)
	sb := InterfaceToString(b)
	if !caseSensitive {
		sa = strings.ToLower(sa)
		sb = strings.ToLower(sb)
	}
	return strings.Compare(sa, sb)
}

func asFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
