// Package deck holds the flashcard reference data the study sessions draw from.
package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/example/prepdeck/pkg/models"
)

var ErrDuplicateCard = errors.New("duplicate flashcard id")

// MaxIDLength keeps "ans:1:<id>" within Telegram's 64-byte callback data.
const MaxIDLength = 58

// CategoryInfo describes a category for menus.
type CategoryInfo struct {
	ID          models.Category
	Name        string
	Description string
	Icon        string
}

var categoryInfo = map[models.Category]CategoryInfo{
	models.CategorySquares:              {models.CategorySquares, "Carrés (1² à 20²)", "Mémorisez les carrés parfaits", "²"},
	models.CategoryCubes:                {models.CategoryCubes, "Cubes (1³ à 10³)", "Mémorisez les cubes parfaits", "³"},
	models.CategoryPrimes:               {models.CategoryPrimes, "Nombres Premiers (jusqu'à 100)", "Reconnaissez et trouvez les nombres premiers", "🔢"},
	models.CategoryFormulas:             {models.CategoryFormulas, "Formules Mathématiques", "Formules essentielles pour le Tage Mage", "📐"},
	models.CategoryDivisibility:         {models.CategoryDivisibility, "Critères de Divisibilité (1 à 15)", "Règles pour déterminer si un nombre est divisible", "➗"},
	models.CategoryMentalCalculation:    {models.CategoryMentalCalculation, "Calcul Mental", "Astuces et techniques de calcul rapide", "🧮"},
	models.CategoryLogicalReasoning:     {models.CategoryLogicalReasoning, "Raisonnement Logique", "Règles de logique et déduction", "🧩"},
	models.CategoryExpression:           {models.CategoryExpression, "Expression", "Règles de grammaire et vocabulaire", "📝"},
	models.CategoryReadingComprehension: {models.CategoryReadingComprehension, "Compréhension de Textes", "Techniques de lecture et analyse", "📖"},
	models.CategoryMinimalConditions:    {models.CategoryMinimalConditions, "Conditions Minimales", "Logique des conditions nécessaires et suffisantes", "⚡"},
	models.CategoryProblemSolving:       {models.CategoryProblemSolving, "Résolution de Problèmes", "Méthodes et stratégies de résolution", "💡"},
}

// Info returns the display metadata of a category.
func Info(c models.Category) CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return CategoryInfo{ID: c, Name: string(c)}
}

// Catalog is an immutable, validated set of flashcards.
type Catalog struct {
	cards []models.Flashcard
	byID  map[string]int
}

// NewCatalog validates and merges card sets. Card order is preserved.
func NewCatalog(sets ...[]models.Flashcard) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int)}
	for _, set := range sets {
		for _, card := range set {
			if err := Validate(card); err != nil {
				return nil, err
			}
			if _, exists := c.byID[card.ID]; exists {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateCard, card.ID)
			}
			c.byID[card.ID] = len(c.cards)
			c.cards = append(c.cards, card)
		}
	}
	return c, nil
}

// Validate checks a single card's fields.
func Validate(card models.Flashcard) error {
	if strings.TrimSpace(card.ID) == "" {
		return fmt.Errorf("flashcard id is required")
	}
	if len(card.ID) > MaxIDLength {
		return fmt.Errorf("flashcard %q: id longer than %d bytes", card.ID, MaxIDLength)
	}
	if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
		return fmt.Errorf("flashcard %q: front and back are required", card.ID)
	}
	if !card.Category.Valid() {
		return fmt.Errorf("flashcard %q: %w: %q", card.ID, models.ErrUnknownCategory, card.Category)
	}
	if !card.Difficulty.Valid() {
		return fmt.Errorf("flashcard %q: %w: %q", card.ID, models.ErrUnknownDifficulty, card.Difficulty)
	}
	return nil
}

// All returns every card.
func (c *Catalog) All() []models.Flashcard {
	return append([]models.Flashcard(nil), c.cards...)
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// ByCategory returns the cards of one category.
func (c *Catalog) ByCategory(category models.Category) []models.Flashcard {
	var out []models.Flashcard
	for _, card := range c.cards {
		if card.Category == category {
			out = append(out, card)
		}
	}
	return out
}

// Get looks a card up by ID.
func (c *Catalog) Get(id string) (models.Flashcard, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Flashcard{}, false
	}
	return c.cards[i], true
}

// Categories lists the categories that have at least one card, in display order.
func (c *Catalog) Categories() []CategoryInfo {
	present := make(map[models.Category]bool)
	for _, card := range c.cards {
		present[card.Category] = true
	}
	var out []CategoryInfo
	for _, category := range models.Categories {
		if present[category] {
			out = append(out, Info(category))
		}
	}
	return out
}

// IDs extracts the card IDs, keeping order.
func IDs(cards []models.Flashcard) []string {
	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.ID
	}
	return ids
}

// Shuffle returns a shuffled copy of cards (Fisher-Yates).
func Shuffle(cards []models.Flashcard, rng *rand.Rand) []models.Flashcard {
	shuffled := append([]models.Flashcard(nil), cards...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
