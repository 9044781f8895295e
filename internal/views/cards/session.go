// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cards

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/state"
)

// Grade is the outcome of reviewing one card.
type Grade int

const (
	// GradeAgain requeues the card for another look this session.
	GradeAgain Grade = iota
	// GradeGood retires the card for this session.
	GradeGood
)

// Session is one study pass over a deck. It is not safe for concurrent use;
// the TUI drives it from a single update loop.
type Session struct {
	ID        string
	DeckName  string
	StartedAt time.Time

	queue   []Card
	flipped bool
	seen    int
	again   int
	good    int
	now     func() time.Time
}

// NewSession starts a study pass over the given cards, shuffled with the
// provided source. A nil source leaves the cards in their incoming order,
// which the tests rely on.
func NewSession(deck string, cards []Card, rng *rand.Rand) *Session {
	queue := make([]Card, len(cards))
	copy(queue, cards)

	if rng != nil {
		rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	}

	return &Session{
		ID:        uuid.NewString(),
		DeckName:  deck,
		StartedAt: time.Now(),
		queue:     queue,
		now:       time.Now,
	}
}

// Current returns the card under review. ok is false once the queue is
// exhausted.
func (s *Session) Current() (Card, bool) {
	if len(s.queue) == 0 {
		return Card{}, false
	}
	return s.queue[0], true
}

// Flip reveals the back of the current card.
func (s *Session) Flip() {
	if len(s.queue) > 0 {
		s.flipped = true
	}
}

// Flipped reports whether the current card's back is showing.
func (s *Session) Flipped() bool {
	return s.flipped
}

// Review grades the current card and advances the session. GradeAgain moves
// the card to the back of the queue for another look; GradeGood retires it.
// Reviewing an exhausted session is a no-op.
func (s *Session) Review(g Grade) {
	if len(s.queue) == 0 {
		return
	}

	card := s.queue[0]
	s.queue = s.queue[1:]
	s.flipped = false
	s.seen++

	switch g {
	case GradeAgain:
		s.again++
		s.queue = append(s.queue, card)
	case GradeGood:
		s.good++
	}
}

// Remaining returns the number of cards still queued.
func (s *Session) Remaining() int {
	return len(s.queue)
}

// Done reports whether every card has been retired.
func (s *Session) Done() bool {
	return len(s.queue) == 0
}

// Record captures the session for the persisted study log.
func (s *Session) Record() state.StudySession {
	return state.StudySession{
		ID:         s.ID,
		Deck:       s.DeckName,
		StartedAt:  s.StartedAt,
		FinishedAt: s.now(),
		Seen:       s.seen,
		Again:      s.again,
		Good:       s.good,
	}
}
