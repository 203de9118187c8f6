package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory   = errors.New("unknown flashcard category")
	ErrUnknownDifficulty = errors.New("unknown flashcard difficulty")
)

// Category groups flashcards by exam topic.
type Category string

const (
	CategorySquares              Category = "carres"
	CategoryCubes                Category = "cubes"
	CategoryPrimes               Category = "nombres_premiers"
	CategoryFormulas             Category = "formules"
	CategoryDivisibility         Category = "divisibilite"
	CategoryMentalCalculation    Category = "calcul_mental"
	CategoryLogicalReasoning     Category = "raisonnement_logique"
	CategoryExpression           Category = "expression"
	CategoryReadingComprehension Category = "comprehension_textes"
	CategoryMinimalConditions    Category = "conditions_minimales"
	CategoryProblemSolving       Category = "resolution_problemes"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategorySquares,
	CategoryCubes,
	CategoryPrimes,
	CategoryFormulas,
	CategoryDivisibility,
	CategoryMentalCalculation,
	CategoryLogicalReasoning,
	CategoryExpression,
	CategoryReadingComprehension,
	CategoryMinimalConditions,
	CategoryProblemSolving,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a raw tag into a Category.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}

// Difficulty is an optional hint attached to a flashcard.
type Difficulty string

const (
	DifficultyUnset  Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is unset or one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyUnset, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty converts a raw tag into a Difficulty. Blank input is unset.
func ParseDifficulty(raw string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, raw)
	}
	return d, nil
}

// Flashcard is a single question/answer card. The tracker only ever sees its ID.
type Flashcard struct {
	ID         string     `json:"id"`
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Examples   []string   `json:"examples,omitempty"` // shown under the answer
}
