// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
)

func testCards() []Card {
	return []Card{
		{ID: "c-1", Deck: "spanish", Front: "perro", Back: "dog"},
		{ID: "c-2", Deck: "spanish", Front: "gato", Back: "cat"},
		{ID: "c-3", Deck: "chords", Front: "Cmaj7", Back: "x32000"},
	}
}

func TestFromDocuments(t *testing.T) {
	docs := []api.Document{
		{ID: "c-1", Fields: map[string]any{"front": "perro", "back": "dog", "deck": "spanish"}},
		{ID: "c-2", Fields: map[string]any{"front": "Cmaj7", "back": "x32000"}},
		{ID: "c-3", Fields: map[string]any{"back": "orphaned back"}},
		{ID: "c-4", Fields: map[string]any{"front": 42}},
	}

	cards := FromDocuments(docs)
	require.Len(t, cards, 2)
	assert.Equal(t, "spanish", cards[0].Deck)
	// No deck field falls back to default.
	assert.Equal(t, "default", cards[1].Deck)
}

func TestDecks(t *testing.T) {
	got := Decks(testCards())
	assert.Equal(t, []DeckSummary{
		{Name: "chords", Count: 1},
		{Name: "spanish", Count: 2},
	}, got)
}

func TestDeck(t *testing.T) {
	got := Deck(testCards(), "spanish")
	require.Len(t, got, 2)
	assert.Equal(t, "c-1", got[0].ID)

	assert.Len(t, Deck(testCards(), ""), 3)
	assert.Empty(t, Deck(testCards(), "nonesuch"))
}

func TestSessionGoodPath(t *testing.T) {
	s := NewSession("spanish", testCards()[:2], nil)
	require.NotEmpty(t, s.ID)

	card, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "c-1", card.ID)
	assert.False(t, s.Flipped())

	s.Flip()
	assert.True(t, s.Flipped())

	s.Review(GradeGood)
	assert.False(t, s.Flipped(), "flip state resets on advance")

	card, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, "c-2", card.ID)

	s.Review(GradeGood)
	assert.True(t, s.Done())
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestSessionAgainRequeues(t *testing.T) {
	s := NewSession("spanish", testCards()[:2], nil)

	s.Review(GradeAgain)
	assert.Equal(t, 2, s.Remaining())

	// c-1 went to the back; c-2 is up next.
	card, _ := s.Current()
	assert.Equal(t, "c-2", card.ID)

	s.Review(GradeGood)
	card, _ = s.Current()
	assert.Equal(t, "c-1", card.ID)

	s.Review(GradeGood)
	assert.True(t, s.Done())

	rec := s.Record()
	assert.Equal(t, 3, rec.Seen)
	assert.Equal(t, 1, rec.Again)
	assert.Equal(t, 2, rec.Good)
	assert.Equal(t, "spanish", rec.Deck)
	assert.False(t, rec.FinishedAt.IsZero())
}

func TestSessionShuffleDeterministic(t *testing.T) {
	cards := testCards()

	a := NewSession("all", cards, rand.New(rand.NewSource(7)))
	b := NewSession("all", cards, rand.New(rand.NewSource(7)))

	for !a.Done() {
		ca, _ := a.Current()
		cb, _ := b.Current()
		assert.Equal(t, ca.ID, cb.ID)
		a.Review(GradeGood)
		b.Review(GradeGood)
	}
	assert.True(t, b.Done())
}

func TestSessionReviewExhaustedNoop(t *testing.T) {
	s := NewSession("empty", nil, nil)
	assert.True(t, s.Done())
	s.Flip()
	assert.False(t, s.Flipped())
	s.Review(GradeGood)
	assert.Equal(t, 0, s.Record().Seen)
}
