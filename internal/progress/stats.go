package progress

import (
	"time"

	"github.com/hoangnd/flashdeck/internal/scheduler"
)

// Study priorities for a deck.
const (
	PriorityHigh   = "HIGH"
	PriorityNormal = "NORMAL"
)

// highPriorityDueThreshold is the due-card count above which a deck is
// flagged for immediate study.
const highPriorityDueThreshold = 20

// DeckStatsSummary holds the aggregated learning state of one deck for one user.
type DeckStatsSummary struct {
	DeckID                int64
	TotalCards            int
	NewCards              int
	LearningCards         int
	YoungCards            int
	MatureCards           int
	DueCards              int
	TotalReviews          int
	CorrectReviews        int
	OverallAccuracy       float64
	AverageTimeSeconds    int
	EstimatedMinutesToday int
	StudyPriority         string
}

// ComputeDeckStats derives summary metrics from a deck's card progress rows.
// A deck with no reviews reports an accuracy of exactly 0.0.
func ComputeDeckStats(deckID int64, progresses []CardProgress, now time.Time) DeckStatsSummary {
	summary := DeckStatsSummary{
		DeckID:     deckID,
		TotalCards: len(progresses),
	}

	var timeSum float64
	for _, p := range progresses {
		switch p.MaturityLevel {
		case scheduler.MaturityNew:
			summary.NewCards++
		case scheduler.MaturityLearning:
			summary.LearningCards++
		case scheduler.MaturityYoung:
			summary.YoungCards++
		case scheduler.MaturityMature:
			summary.MatureCards++
		}

		if p.NextReviewDate != nil && p.NextReviewDate.Before(now) {
			summary.DueCards++
		}

		summary.TotalReviews += p.TotalReviews
		summary.CorrectReviews += p.CorrectReviews
		if p.AverageTimeSeconds > 0 {
			timeSum += p.AverageTimeSeconds
		}
	}

	if summary.TotalReviews > 0 {
		summary.OverallAccuracy = float64(summary.CorrectReviews) / float64(summary.TotalReviews)
	}

	summary.AverageTimeSeconds = int(roundHalfUp2(timeSum / float64(max(1, summary.TotalCards))))
	summary.EstimatedMinutesToday = summary.DueCards * summary.AverageTimeSeconds / 60

	summary.StudyPriority = PriorityNormal
	if summary.DueCards > highPriorityDueThreshold {
		summary.StudyPriority = PriorityHigh
	}

	return summary
}
