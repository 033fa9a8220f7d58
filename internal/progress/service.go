package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"

	"github.com/hoangnd/flashdeck/internal/database"
	"github.com/hoangnd/flashdeck/internal/scheduler"
)

// submitRetryAttempts bounds how often a review submission is retried after
// losing an optimistic-lock race on the same card.
const submitRetryAttempts = 3

// Service coordinates review submissions and the read-side study queries.
type Service struct {
	db         *sqlx.DB
	progresses Repository
	reviewLogs ReviewLogRepository
	now        func() time.Time
}

// NewService creates a new Service.
func NewService(db *sqlx.DB, progresses Repository, reviewLogs ReviewLogRepository) *Service {
	return &Service{
		db:         db,
		progresses: progresses,
		reviewLogs: reviewLogs,
		now:        time.Now,
	}
}

// InitializeCardProgress seeds the learning state for a new card: maturity NEW,
// ease factor 2.5, all counters zero. Called from the card-creation flow.
func (s *Service) InitializeCardProgress(ctx context.Context, userID, flashcardID int64) (*CardProgress, error) {
	p := NewCardProgress(userID, flashcardID)
	if err := s.progresses.Create(ctx, s.db, p); err != nil {
		return nil, fmt.Errorf("progresses.Create() > %w", err)
	}
	return p, nil
}

// SubmitReview applies a quality rating to a card's learning state and appends
// a review log entry. The state update and the log insert commit atomically.
// Concurrent submissions for the same card race on the version column; the
// loser re-reads and retries.
func (s *Service) SubmitReview(ctx context.Context, userID, flashcardID int64, quality int, timeTakenSeconds *int) (*CardProgress, error) {
	// Rejected before any state is read.
	if quality < scheduler.MinQuality || quality > scheduler.MaxQuality {
		return nil, fmt.Errorf("%w: got %d", scheduler.ErrInvalidQuality, quality)
	}

	var updated *CardProgress
	err := retry.Do(
		func() error {
			p, err := s.submitReviewOnce(ctx, userID, flashcardID, quality, timeTakenSeconds)
			if err != nil {
				return err
			}
			updated = p
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(submitRetryAttempts),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrStaleProgress)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) submitReviewOnce(ctx context.Context, userID, flashcardID int64, quality int, timeTakenSeconds *int) (*CardProgress, error) {
	p, err := s.progresses.FindByUserAndCard(ctx, userID, flashcardID)
	if err != nil {
		return nil, err
	}
	expectedVersion := p.Version

	now := s.now()
	result, err := scheduler.ComputeNext(now, quality, p.Repetitions, p.EaseFactor, p.IntervalDays)
	if err != nil {
		return nil, err
	}

	p.TotalReviews++
	if quality >= 3 {
		p.CorrectReviews++
	} else {
		p.WrongReviews++
	}

	if timeTakenSeconds != nil {
		newAvg := (p.AverageTimeSeconds*float64(p.TotalReviews-1) + float64(*timeTakenSeconds)) /
			float64(p.TotalReviews)
		p.AverageTimeSeconds = roundHalfUp2(newAvg)
	}

	// Ease, interval, repetitions, next review date and maturity are always
	// written together from the scheduler result.
	p.EaseFactor = result.EaseFactor
	p.IntervalDays = result.IntervalDays
	p.Repetitions = result.Repetitions
	nextReview := result.NextReviewDate
	p.NextReviewDate = &nextReview
	p.MaturityLevel = result.Maturity
	p.LastReviewDate = &now

	err = database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.progresses.UpdateReviewed(ctx, tx, p, expectedVersion); err != nil {
			return err
		}
		log := &ReviewLog{
			FlashcardID:      flashcardID,
			UserID:           userID,
			Quality:          quality,
			EaseFactor:       result.EaseFactor,
			IntervalDays:     result.IntervalDays,
			Repetitions:      result.Repetitions,
			ReviewDate:       now,
			NextReviewDate:   &nextReview,
			TimeTakenSeconds: timeTakenSeconds,
		}
		return s.reviewLogs.Create(ctx, tx, log)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DueCards returns cards whose next review date has passed, earliest first,
// optionally scoped to a deck and capped at limit.
func (s *Service) DueCards(ctx context.Context, userID int64, deckID *int64, limit int) ([]CardProgress, error) {
	progresses, err := s.progresses.FindDue(ctx, userID, deckID, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("progresses.FindDue() > %w", err)
	}
	return progresses, nil
}

// NewCards returns cards that have never been reviewed, oldest first,
// optionally scoped to a deck and capped at limit.
func (s *Service) NewCards(ctx context.Context, userID int64, deckID *int64, limit int) ([]CardProgress, error) {
	progresses, err := s.progresses.FindNew(ctx, userID, deckID, limit)
	if err != nil {
		return nil, fmt.Errorf("progresses.FindNew() > %w", err)
	}
	return progresses, nil
}

// DeckStats aggregates the learning state of every card in a deck.
func (s *Service) DeckStats(ctx context.Context, userID, deckID int64) (*DeckStatsSummary, error) {
	progresses, err := s.progresses.FindByDeck(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("progresses.FindByDeck() > %w", err)
	}
	summary := ComputeDeckStats(deckID, progresses, s.now())
	return &summary, nil
}

// RecentReviews returns reviews submitted since the given time, most recent first.
func (s *Service) RecentReviews(ctx context.Context, userID int64, since time.Time, limit int) ([]ReviewLog, error) {
	logs, err := s.reviewLogs.FindRecent(ctx, userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("reviewLogs.FindRecent() > %w", err)
	}
	return logs, nil
}

// roundHalfUp2 rounds to 2 decimal places, half away from zero for positive values.
func roundHalfUp2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
