// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/cards"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/music"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/tags"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/tasks"
)

// documentsFromPayload collects every sub-fetch's documents out of an
// aggregate payload, regardless of how many collections the widget spans.
func documentsFromPayload(payload []byte) []api.Document {
	//nolint:prealloc
	var docs []api.Document

	gjson.ParseBytes(payload).ForEach(func(_, member gjson.Result) bool {
		arr := member.Get("documents")
		if !arr.Exists() {
			return true
		}
		var batch []api.Document
		if err := json.Unmarshal([]byte(arr.Raw), &batch); err == nil {
			docs = append(docs, batch...)
		}
		return true
	})

	return docs
}

func cardsFromPayload(payload []byte) []cards.Card {
	return cards.FromDocuments(documentsFromPayload(payload))
}

// CursorMarker is the prefix shown on the selected widget row.
const CursorMarker = "▸ "

// viewWidgetList renders the left pane.
func (m Model) viewWidgetList() string {
	var b strings.Builder
	for i, widget := range Widgets {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == m.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}

		if widget == m.active {
			b.WriteString(widget)
		} else {
			b.WriteString(mutedText.Render(widget))
		}
		if m.loading[widget] {
			b.WriteString(" " + m.spinner.View())
		}
	}
	return b.String()
}

// renderWidget produces the right-pane content for a widget from its cached
// payload.
func (m Model) renderWidget(widget string) string {
	payload := m.payloads[widget]

	var b strings.Builder
	if m.fromCache[widget] {
		b.WriteString(mutedText.Render("(cached)") + "\n")
	}

	switch widget {
	case "notes":
		renderNotes(&b, documentsFromPayload(payload))
	case "tasks":
		renderTasks(&b, documentsFromPayload(payload))
	case "music":
		renderMusic(&b, payload)
	case "cards":
		renderCards(&b, documentsFromPayload(payload))
	case "tags":
		renderTags(&b, documentsFromPayload(payload))
	}

	return b.String()
}

func renderNotes(b *strings.Builder, docs []api.Document) {
	if len(docs) == 0 {
		b.WriteString("No notes")
		return
	}
	for _, doc := range docs {
		b.WriteString(doc.Title)
		for _, tag := range doc.Tags {
			b.WriteString(" " + TagBadge(tag))
		}
		if doc.Edited != nil {
			b.WriteString(" " + mutedText.Render(humanize.Time(*doc.Edited)))
		}
		b.WriteByte('\n')
	}
}

func renderTasks(b *strings.Builder, docs []api.Document) {
	list := tasks.FromDocuments(docs)
	if len(list) == 0 {
		b.WriteString("No tasks")
		return
	}
	tasks.Sort(list)

	overdue := make(map[string]bool)
	for _, t := range tasks.Overdue(list, time.Now()) {
		overdue[t.ID] = true
	}
	fmt.Fprintf(b, "%d open, %d overdue\n\n", len(tasks.Open(list)), len(overdue))

	for _, t := range list {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, t.Title)
		if t.Due != nil {
			due := humanize.Time(*t.Due)
			if overdue[t.ID] {
				due = errorText.Render(due)
			}
			line += " " + mutedText.Render("due ") + due
		}
		b.WriteString(line + "\n")
	}
}

func renderMusic(b *strings.Builder, payload []byte) {
	lib, err := music.ParseLibrary(payload)
	if err != nil {
		b.WriteString(errorText.Render(err.Error()))
		return
	}

	fmt.Fprintf(b, "%d tracks, %d artists, %d genres\n\n",
		len(lib.Tracks), len(lib.Artists), len(lib.Genres))

	b.WriteString("By genre:\n")
	for _, r := range lib.ByGenre() {
		fmt.Fprintf(b, "  %-20s %d\n", r.Name, r.Count)
	}
}

func renderCards(b *strings.Builder, docs []api.Document) {
	deck := cards.FromDocuments(docs)
	if len(deck) == 0 {
		b.WriteString("No cards")
		return
	}

	for _, summary := range cards.Decks(deck) {
		fmt.Fprintf(b, "%-20s %d cards\n", summary.Name, summary.Count)
	}
	b.WriteString("\n" + mutedText.Render("press s to study"))
}

func renderTags(b *strings.Builder, docs []api.Document) {
	index := tags.Index(docs)
	if len(index) == 0 {
		b.WriteString("No tags")
		return
	}

	for _, entry := range index {
		fmt.Fprintf(b, "%s %d\n", TagBadge(entry.Tag), entry.Count)
	}
}
