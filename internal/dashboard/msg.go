// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package dashboard implements the two-pane board TUI: widget list on the
// left, the active widget's content on the right.
package dashboard

import (
	"context"
	"time"
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneLeft  Focus = iota // Widget list has focus.
	PaneRight              // Content viewport has focus.
)

// Widget names, in display order.
var Widgets = []string{"notes", "tasks", "music", "cards", "tags"}

// Fetcher runs the fetch plan for a widget. Implemented by the command
// layer over the orchestrator.
type Fetcher interface {
	// Fetch returns the aggregate payload for the widget. fromCache reports
	// whether the payload was served from the local cache.
	Fetch(ctx context.Context, widget string, force bool) (data []byte, fromCache bool, err error)
	// Fraction reports fetch progress in [0, 1].
	Fraction() float64
}

// --- tea.Msg types ---

// PayloadMsg carries the result of a widget fetch. Gen identifies the fetch
// generation the result belongs to; stale generations are discarded.
type PayloadMsg struct {
	Widget    string
	Gen       int
	Data      []byte
	FromCache bool
	Err       error
}

// ProgressTickMsg drives the progress readout while a fetch is in flight.
type ProgressTickMsg time.Time

// SessionSavedMsg carries the result of persisting a study session.
type SessionSavedMsg struct {
	Err error
}
