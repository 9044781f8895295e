// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cards layers flashcard semantics, including the study session
// state machine, over cached card documents.
package cards

import (
	"sort"
	"strings"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
)

// Card is the presentation form of a flashcard document.
type Card struct {
	ID    string
	Deck  string
	Front string
	Back  string
	Tags  []string
}

// DeckSummary is a deck name and its card count.
type DeckSummary struct {
	Name  string
	Count int
}

// FromDocuments converts card documents into Cards. Documents without a
// front side are dropped; a card you cannot be prompted with is useless.
func FromDocuments(docs []api.Document) []Card {
	//nolint:prealloc
	var cards []Card
	for _, doc := range docs {
		front, _ := doc.Fields["front"].(string)
		if front == "" {
			continue
		}
		back, _ := doc.Fields["back"].(string)
		deck, _ := doc.Fields["deck"].(string)
		if deck == "" {
			deck = "default"
		}

		cards = append(cards, Card{
			ID:    doc.ID,
			Deck:  deck,
			Front: front,
			Back:  back,
			Tags:  doc.Tags,
		})
	}
	return cards
}

// Decks summarizes card counts per deck, sorted by name.
func Decks(cards []Card) []DeckSummary {
	counts := make(map[string]int)
	for _, card := range cards {
		counts[card.Deck]++
	}

	summaries := make([]DeckSummary, 0, len(counts))
	for name, count := range counts {
		summaries = append(summaries, DeckSummary{Name: name, Count: count})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return strings.ToLower(summaries[i].Name) < strings.ToLower(summaries[j].Name)
	})

	return summaries
}

// Deck returns only the cards belonging to the named deck. An empty name
// returns everything.
func Deck(cards []Card, name string) []Card {
	if name == "" {
		return cards
	}
	//nolint:prealloc
	var matched []Card
	for _, card := range cards {
		if card.Deck == name {
			matched = append(matched, card)
		}
	}
	return matched
}
