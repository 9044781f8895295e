// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package tasks layers task-list semantics over cached task documents.
package tasks

import (
	"sort"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
)

// Task is the presentation form of a task document.
type Task struct {
	ID       string
	Title    string
	Tags     []string
	Done     bool
	Due      *time.Time
	Priority int
}

// FromDocuments converts task documents into Tasks. Field values with
// unexpected types are treated as absent rather than failing the whole list.
func FromDocuments(docs []api.Document) []Task {
	tasks := make([]Task, 0, len(docs))
	for _, doc := range docs {
		t := Task{
			ID:    doc.ID,
			Title: doc.Title,
			Tags:  doc.Tags,
		}

		if v, ok := doc.Fields["done"].(bool); ok {
			t.Done = v
		}

		switch v := doc.Fields["priority"].(type) {
		case float64:
			t.Priority = int(v)
		case int:
			t.Priority = v
		}

		if v, ok := doc.Fields["due"].(string); ok && v != "" {
			due, err := parseDue(v)
			if err != nil {
				log.Debugf("unparseable due date %q on %s: %v", v, doc.ID, err)
			} else {
				t.Due = &due
			}
		}

		tasks = append(tasks, t)
	}
	return tasks
}

// Sort orders tasks for display: open before done, then earliest due date
// (tasks without one last), then priority, then title. Stable so that equal
// tasks keep their incoming order.
func Sort(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if a.Done != b.Done {
			return !a.Done
		}

		if c := compareDue(a.Due, b.Due); c != 0 {
			return c < 0
		}

		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}

		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})
}

// Open returns only the tasks that are not done.
func Open(tasks []Task) []Task {
	//nolint:prealloc
	var open []Task
	for _, t := range tasks {
		if !t.Done {
			open = append(open, t)
		}
	}
	return open
}

// Overdue returns the open tasks whose due date is before now.
func Overdue(tasks []Task, now time.Time) []Task {
	//nolint:prealloc
	var overdue []Task
	for _, t := range tasks {
		if !t.Done && t.Due != nil && t.Due.Before(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue
}

func compareDue(a, b *time.Time) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}
	switch {
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}

// parseDue accepts full timestamps and bare dates.
func parseDue(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
