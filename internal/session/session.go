// Package session builds and walks study queues over a set of flashcards.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/example/prepdeck/internal/deck"
	"github.com/example/prepdeck/pkg/models"
)

var ErrUnknownMode = errors.New("unknown study mode")

// Mode selects how the queue is built.
type Mode string

const (
	// ModeSmart orders cards by review priority.
	ModeSmart Mode = "smart"
	// ModeReview keeps due cards only, shuffled.
	ModeReview Mode = "review"
	// ModeShuffle uses every card in random order.
	ModeShuffle Mode = "shuffle"
)

// Modes lists the supported modes in menu order.
var Modes = []Mode{ModeSmart, ModeReview, ModeShuffle}

// ParseMode converts user input into a Mode. Empty input means smart.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if m == "" {
		return ModeSmart, nil
	}
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
}

// Ranker is the subset of the mastery tracker a session needs.
type Ranker interface {
	DueForReview(ctx context.Context, cardIDs []string) []string
	RankByPriority(ctx context.Context, cardIDs []string) []string
}

// Session is a single pass over a queue of cards. It is not safe for
// concurrent use; callers serialize access per chat.
type Session struct {
	Mode      Mode
	cards     []models.Flashcard
	index     int
	flipped   bool
	correct   int
	incorrect int
}

// New builds the queue for mode from cards.
func New(ctx context.Context, ranker Ranker, cards []models.Flashcard, mode Mode, rng *rand.Rand) *Session {
	s := &Session{Mode: mode}

	switch mode {
	case ModeReview:
		s.cards = deck.Shuffle(pick(cards, ranker.DueForReview(ctx, deck.IDs(cards))), rng)
	case ModeShuffle:
		s.cards = deck.Shuffle(cards, rng)
	default:
		s.Mode = ModeSmart
		s.cards = pick(cards, ranker.RankByPriority(ctx, deck.IDs(cards)))
	}
	return s
}

// pick returns the cards matching ids, in ids order.
func pick(cards []models.Flashcard, ids []string) []models.Flashcard {
	byID := make(map[string]models.Flashcard, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}
	out := make([]models.Flashcard, 0, len(ids))
	for _, id := range ids {
		if card, ok := byID[id]; ok {
			out = append(out, card)
		}
	}
	return out
}

// Current returns the card being studied, if any remain.
func (s *Session) Current() (models.Flashcard, bool) {
	if s.Done() {
		return models.Flashcard{}, false
	}
	return s.cards[s.index], true
}

// Flip reveals the back of the current card.
func (s *Session) Flip() {
	if !s.Done() {
		s.flipped = true
	}
}

func (s *Session) Flipped() bool { return s.flipped }

// Answer tallies the answer and moves to the next card.
func (s *Session) Answer(correct bool) {
	if s.Done() {
		return
	}
	if correct {
		s.correct++
	} else {
		s.incorrect++
	}
	s.next()
}

// Skip moves to the next card without tallying.
func (s *Session) Skip() {
	if !s.Done() {
		s.next()
	}
}

// Prev steps back to the previous card face down. The score is unchanged.
func (s *Session) Prev() {
	if s.index > 0 {
		s.index--
		s.flipped = false
	}
}

func (s *Session) next() {
	s.index++
	s.flipped = false
}

func (s *Session) Done() bool { return s.index >= len(s.cards) }

// Position returns the zero-based index of the current card and the queue length.
func (s *Session) Position() (int, int) { return s.index, len(s.cards) }

// Score returns the correct and incorrect answers given so far.
func (s *Session) Score() (int, int) { return s.correct, s.incorrect }
