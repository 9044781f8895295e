// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package differ renders the difference between two cached payloads.
package differ

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff compares two JSON payloads and returns a human readable rendering of
// their differences. Identical payloads return ("", false, nil).
func Diff(left, right []byte, color bool) (string, bool, error) {
	d, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return "", false, fmt.Errorf("differ: comparing payloads: %w", err)
	}

	if !d.Modified() {
		return "", false, nil
	}

	// The ascii formatter needs the left document unmarshaled so it can show
	// unchanged context around each change.
	var leftObj map[string]interface{}
	if err := json.Unmarshal(left, &leftObj); err != nil {
		return "", false, fmt.Errorf("differ: parsing left payload: %w", err)
	}

	out, err := formatter.NewAsciiFormatter(leftObj, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	}).Format(d)
	if err != nil {
		return "", false, fmt.Errorf("differ: formatting: %w", err)
	}

	return out, true, nil
}

// DiffDelta compares two JSON payloads and returns the difference in the
// compact delta format, suitable for machine consumption.
func DiffDelta(left, right []byte) (string, bool, error) {
	d, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return "", false, fmt.Errorf("differ: comparing payloads: %w", err)
	}

	if !d.Modified() {
		return "", false, nil
	}

	out, err := formatter.NewDeltaFormatter().Format(d)
	if err != nil {
		return "", false, fmt.Errorf("differ: formatting delta: %w", err)
	}

	return out, true, nil
}
