// Package progress tracks per-card learning state and the append-only review log.
package progress

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hoangnd/flashdeck/internal/scheduler"
)

//go:generate mockgen -source=progress.go -destination=../mocks/progress/mock_repository.go -package=mock_progress

// ErrProgressNotFound is returned when no learning state exists for a card/user pair.
var ErrProgressNotFound = errors.New("card progress not found")

// ErrStaleProgress is returned when a concurrent review updated the same card
// progress row first. The write is retried from a fresh read.
var ErrStaleProgress = errors.New("card progress was updated concurrently")

// CardProgress is the per-(user, card) learning state. It is created once when
// the card is created and mutated exactly once per submitted review.
type CardProgress struct {
	ID                 int64              `db:"id"`
	UserID             int64              `db:"user_id"`
	FlashcardID        int64              `db:"flashcard_id"`
	TotalReviews       int                `db:"total_reviews"`
	CorrectReviews     int                `db:"correct_reviews"`
	WrongReviews       int                `db:"wrong_reviews"`
	EaseFactor         float64            `db:"ease_factor"`
	IntervalDays       int                `db:"interval_days"`
	Repetitions        int                `db:"repetitions"`
	NextReviewDate     *time.Time         `db:"next_review_date"`
	AverageTimeSeconds float64            `db:"average_time_seconds"`
	LastReviewDate     *time.Time         `db:"last_review_date"`
	MaturityLevel      scheduler.Maturity `db:"maturity_level"`
	Version            int64              `db:"version"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}

// Accuracy returns the fraction of correct reviews, 0.0 when never reviewed.
func (p *CardProgress) Accuracy() float64 {
	if p.TotalReviews == 0 {
		return 0.0
	}
	return float64(p.CorrectReviews) / float64(p.TotalReviews)
}

// NewCardProgress seeds the learning state for a freshly created card.
func NewCardProgress(userID, flashcardID int64) *CardProgress {
	return &CardProgress{
		UserID:        userID,
		FlashcardID:   flashcardID,
		EaseFactor:    scheduler.DefaultEaseFactor,
		MaturityLevel: scheduler.MaturityNew,
	}
}

// ReviewLog is one immutable record per submitted review. It captures the
// post-review scheduling snapshot and is never used to recompute CardProgress.
type ReviewLog struct {
	ID               int64      `db:"id"`
	FlashcardID      int64      `db:"flashcard_id"`
	UserID           int64      `db:"user_id"`
	Quality          int        `db:"quality"`
	EaseFactor       float64    `db:"ease_factor"`
	IntervalDays     int        `db:"interval_days"`
	Repetitions      int        `db:"repetitions"`
	ReviewDate       time.Time  `db:"review_date"`
	NextReviewDate   *time.Time `db:"next_review_date"`
	TimeTakenSeconds *int       `db:"time_taken_seconds"`
	CreatedAt        time.Time  `db:"created_at"`
}

// Repository defines operations for managing card learning state.
// Create and UpdateReviewed accept an ExtContext so they can participate in
// the caller's transaction.
type Repository interface {
	FindByUserAndCard(ctx context.Context, userID, flashcardID int64) (*CardProgress, error)
	FindDue(ctx context.Context, userID int64, deckID *int64, now time.Time, limit int) ([]CardProgress, error)
	FindNew(ctx context.Context, userID int64, deckID *int64, limit int) ([]CardProgress, error)
	FindByDeck(ctx context.Context, userID, deckID int64) ([]CardProgress, error)
	Create(ctx context.Context, ext sqlx.ExtContext, p *CardProgress) error
	UpdateReviewed(ctx context.Context, ext sqlx.ExtContext, p *CardProgress, expectedVersion int64) error
}

// ReviewLogRepository defines operations for the append-only review log.
type ReviewLogRepository interface {
	Create(ctx context.Context, ext sqlx.ExtContext, log *ReviewLog) error
	FindByCard(ctx context.Context, userID, flashcardID int64) ([]ReviewLog, error)
	FindRecent(ctx context.Context, userID int64, since time.Time, limit int) ([]ReviewLog, error)
}
