// Package scheduler implements the SM-2 derived review scheduling algorithm.
//
// Quality ratings (0-5):
//   - 0: complete blackout, forgot entirely
//   - 1: incorrect, remembered on seeing the answer
//   - 2: incorrect, but easy to recall
//   - 3: correct with difficulty
//   - 4: correct with hesitation
//   - 5: perfect recall
package scheduler

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// DefaultEaseFactor is the ease factor assigned to a card that has never been reviewed.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the lower bound the ease factor never drops below.
	MinEaseFactor = 1.3

	// MinQuality and MaxQuality bound the accepted quality ratings.
	MinQuality = 0
	MaxQuality = 5
)

// ErrInvalidQuality is returned when a quality rating is outside [MinQuality, MaxQuality].
var ErrInvalidQuality = errors.New("quality must be between 0 and 5")

// Maturity is the coarse learning-progress classification of a card.
type Maturity string

const (
	MaturityNew      Maturity = "NEW"
	MaturityLearning Maturity = "LEARNING"
	MaturityYoung    Maturity = "YOUNG"
	MaturityMature   Maturity = "MATURE"
	// MaturityRelearning is declared in the taxonomy but never assigned by Classify:
	// a failed review always resets a card to MaturityNew.
	MaturityRelearning Maturity = "RELEARNING"
)

// Result is the next learning state computed from a single review.
type Result struct {
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	NextReviewDate time.Time
	Maturity       Maturity
}

// ComputeNext calculates the next review state from the current state and a quality rating.
// It is a pure function: the only failure mode is an invalid quality rating.
func ComputeNext(now time.Time, quality, repetitions int, easeFactor float64, intervalDays int) (Result, error) {
	if quality < MinQuality || quality > MaxQuality {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}

	newEase := nextEaseFactor(easeFactor, quality)

	var newRepetitions, newInterval int
	if quality < 3 {
		// Wrong answer: restart from the beginning, review again tomorrow.
		newRepetitions = 0
		newInterval = 1
	} else {
		newRepetitions = repetitions + 1
		switch newRepetitions {
		case 1:
			newInterval = 1
		case 2:
			newInterval = 6
		default:
			newInterval = int(math.Ceil(float64(intervalDays) * newEase))
		}
	}

	newInterval = applyQualityModifier(newInterval, quality)

	return Result{
		EaseFactor:     newEase,
		IntervalDays:   newInterval,
		Repetitions:    newRepetitions,
		NextReviewDate: now.AddDate(0, 0, newInterval),
		Maturity:       Classify(newRepetitions, newInterval),
	}, nil
}

// nextEaseFactor returns the new ease factor for a quality rating.
// EF' = EF + (0.1 - (5 - q) * (0.08 + (5 - q) * 0.02)) for correct answers.
// Wrong answers leave the ease factor untouched apart from the floor.
func nextEaseFactor(easeFactor float64, quality int) float64 {
	if quality < 3 {
		if easeFactor < MinEaseFactor {
			return MinEaseFactor
		}
		return easeFactor
	}

	q := float64(quality)
	adjustment := 0.1 - (5-q)*(0.08+(5-q)*0.02)
	newEase := easeFactor + adjustment
	if newEase < MinEaseFactor {
		newEase = MinEaseFactor
	}
	return roundHalfUp2(newEase)
}

// applyQualityModifier scales the base interval per rating, similar to Anki's
// Again/Hard/Good/Easy buttons. The scale truncates rather than rounds.
func applyQualityModifier(baseInterval, quality int) int {
	switch quality {
	case 0:
		return 1
	case 1:
		return max(1, int(float64(baseInterval)*0.5))
	case 2:
		return max(1, int(float64(baseInterval)*0.7))
	case 4:
		return int(float64(baseInterval) * 1.2)
	case 5:
		return int(float64(baseInterval) * 1.5)
	default:
		return baseInterval
	}
}

// Classify derives the maturity level from repetitions and interval alone.
// A failed review resets repetitions, so it always classifies as NEW regardless
// of how mature the card was before.
func Classify(repetitions, intervalDays int) Maturity {
	switch {
	case repetitions == 0:
		return MaturityNew
	case intervalDays < 7:
		return MaturityLearning
	case intervalDays < 21:
		return MaturityYoung
	default:
		return MaturityMature
	}
}

// roundHalfUp2 rounds to 2 decimal places, half away from zero for positive values.
func roundHalfUp2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
