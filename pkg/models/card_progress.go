package models

// CardProgress tracks a learner's mastery of a single flashcard.
// Timestamps are milliseconds since the Unix epoch.
type CardProgress struct {
	CardID         string `json:"cardId" db:"card_id"`
	MasteryLevel   int    `json:"masteryLevel" db:"mastery_level"`     // 0 (unknown) to 5 (mastered)
	LastReviewed   int64  `json:"lastReviewed" db:"last_reviewed"`     // time of the most recent answer
	NextReview     int64  `json:"nextReview" db:"next_review"`         // earliest time the card is due again
	TimesReviewed  int    `json:"timesReviewed" db:"times_reviewed"`   // total answers recorded
	TimesCorrect   int    `json:"timesCorrect" db:"times_correct"`     // correct answers
	TimesIncorrect int    `json:"timesIncorrect" db:"times_incorrect"` // incorrect answers
	Streak         int    `json:"streak" db:"streak"`                  // consecutive correct answers
}

// ProgressMap is the full progress store keyed by card ID.
type ProgressMap map[string]CardProgress

// Clone returns a shallow copy of the map. CardProgress holds no references,
// so the copy shares nothing with the original.
func (m ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(m))
	for id, p := range m {
		out[id] = p
	}
	return out
}

// MasteryStats partitions a set of cards by learning phase.
type MasteryStats struct {
	New      int `json:"new"`
	Learning int `json:"learning"`
	Mastered int `json:"mastered"`
	Total    int `json:"total"`
}
