package mastery

import "time"

const (
	// MinLevel is the rung of a card that is not known at all.
	MinLevel = 0
	// MaxLevel is the rung of a fully mastered card.
	MaxLevel = 5
	// LearningThreshold is the first level at which a card counts as mastered.
	// Cards below it are always due.
	LearningThreshold = 3

	// NewCardPriority is returned by Priority for cards without a record.
	NewCardPriority int64 = 1000
	// levelWeight is the priority added per rung below MaxLevel+1.
	levelWeight int64 = 100
)

// reviewIntervals maps a mastery level to the delay before the next review.
var reviewIntervals = [MaxLevel + 1]time.Duration{
	0,                  // immediately
	1 * time.Minute,    // 1 minute
	5 * time.Minute,    // 5 minutes
	30 * time.Minute,   // 30 minutes
	24 * time.Hour,     // 1 day
	7 * 24 * time.Hour, // 1 week
}

// Interval returns the review delay for a mastery level.
// Out of range levels are clamped to the ladder.
func Interval(level int) time.Duration {
	return reviewIntervals[clampLevel(level)]
}

func clampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}
