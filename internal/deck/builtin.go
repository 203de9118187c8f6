package deck

import (
	"fmt"

	"github.com/example/prepdeck/pkg/models"
)

var primesTo100 = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// Builtin returns the bundled decks.
func Builtin() []models.Flashcard {
	var cards []models.Flashcard
	cards = append(cards, squares()...)
	cards = append(cards, cubes()...)
	cards = append(cards, primes()...)
	cards = append(cards, formulas...)
	cards = append(cards, divisibility...)
	cards = append(cards, mentalCalculation...)
	cards = append(cards, logicalReasoning...)
	cards = append(cards, expression...)
	cards = append(cards, readingComprehension...)
	cards = append(cards, minimalConditions...)
	cards = append(cards, problemSolving...)
	cards = append(cards, workedExamples...)
	cards = append(cards, essentialConcepts...)
	return cards
}

func band(n, easyMax, mediumMax int) models.Difficulty {
	switch {
	case n <= easyMax:
		return models.DifficultyEasy
	case n <= mediumMax:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

// squares builds forward and reverse cards for 1² to 20².
func squares() []models.Flashcard {
	var cards []models.Flashcard
	for n := 1; n <= 20; n++ {
		sq := n * n
		d := band(n, 10, 15)
		cards = append(cards,
			models.Flashcard{ID: fmt.Sprintf("carre-%d-forward", n), Front: fmt.Sprintf("%d² = ?", n), Back: fmt.Sprint(sq), Category: models.CategorySquares, Difficulty: d},
			models.Flashcard{ID: fmt.Sprintf("carre-%d-reverse", n), Front: fmt.Sprintf("?² = %d", sq), Back: fmt.Sprint(n), Category: models.CategorySquares, Difficulty: d},
		)
	}
	return cards
}

// cubes builds forward and reverse cards for 1³ to 10³.
func cubes() []models.Flashcard {
	var cards []models.Flashcard
	for n := 1; n <= 10; n++ {
		cube := n * n * n
		d := band(n, 5, 7)
		cards = append(cards,
			models.Flashcard{ID: fmt.Sprintf("cube-%d-forward", n), Front: fmt.Sprintf("%d³ = ?", n), Back: fmt.Sprint(cube), Category: models.CategoryCubes, Difficulty: d},
			models.Flashcard{ID: fmt.Sprintf("cube-%d-reverse", n), Front: fmt.Sprintf("?³ = %d", cube), Back: fmt.Sprint(n), Category: models.CategoryCubes, Difficulty: d},
		)
	}
	return cards
}

// primes builds "next prime after" cards for every prime below 97 and
// "previous prime before" cards from 7 upwards.
func primes() []models.Flashcard {
	var cards []models.Flashcard
	for i, p := range primesTo100[:len(primesTo100)-1] {
		next := primesTo100[i+1]
		cards = append(cards, models.Flashcard{
			ID:         fmt.Sprintf("premier-after-%d", p),
			Front:      fmt.Sprintf("Quel est le nombre premier après %d ?", p),
			Back:       fmt.Sprint(next),
			Category:   models.CategoryPrimes,
			Difficulty: band(p, 20, 50),
			Examples: []string{
				fmt.Sprintf("Le nombre premier suivant %d est %d", p, next),
				fmt.Sprintf("Séquence : ... %d → %d ...", p, next),
			},
		})
	}
	for i, p := range primesTo100 {
		if p < 7 {
			continue
		}
		prev := primesTo100[i-1]
		cards = append(cards, models.Flashcard{
			ID:         fmt.Sprintf("premier-before-%d", p),
			Front:      fmt.Sprintf("Quel est le nombre premier avant %d ?", p),
			Back:       fmt.Sprint(prev),
			Category:   models.CategoryPrimes,
			Difficulty: band(p, 20, 50),
			Examples: []string{
				fmt.Sprintf("Le nombre premier précédent %d est %d", p, prev),
				fmt.Sprintf("Séquence : ... %d → %d ...", prev, p),
			},
		})
	}
	return append(cards, primeMemos...)
}
