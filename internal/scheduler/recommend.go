package scheduler

// Limits holds the recommended daily study limits.
type Limits struct {
	NewCardsPerDay    int
	ReviewCardsPerDay int
	SecondsPerCard    int
}

// RecommendedLimits returns the default daily review limits.
func RecommendedLimits() Limits {
	return Limits{
		NewCardsPerDay:    20,
		ReviewCardsPerDay: 100,
		SecondsPerCard:    30,
	}
}

// Recommendation describes how a study session should be prioritized.
type Recommendation struct {
	TotalCards       int
	EstimatedMinutes int
	Priority         string
	Warning          string
}

// StudyRecommendation estimates the workload for a session over the given
// due and new card counts. New cards are capped at the daily limit.
func StudyRecommendation(dueCards, newCards int) Recommendation {
	limits := RecommendedLimits()

	total := dueCards + min(newCards, limits.NewCardsPerDay)
	rec := Recommendation{
		TotalCards:       total,
		EstimatedMinutes: total * limits.SecondsPerCard / 60,
	}

	if dueCards > 0 {
		rec.Priority = "Review due cards first"
	} else {
		rec.Priority = "Learn new cards"
	}
	if dueCards > 50 {
		rec.Warning = "High backlog! Focus on reviews today."
	}

	return rec
}
