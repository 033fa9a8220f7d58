package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByUserAndCard returns the learning state for a card/user pair.
func (r *DBRepository) FindByUserAndCard(ctx context.Context, userID, flashcardID int64) (*CardProgress, error) {
	var p CardProgress
	err := r.db.GetContext(ctx, &p,
		"SELECT * FROM card_progress WHERE user_id = ? AND flashcard_id = ?",
		userID, flashcardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(card_progress) > %w", err)
	}
	return &p, nil
}

// FindDue returns cards whose next review date has passed, earliest first.
// An unset next review date means the card was never reviewed and is not due.
func (r *DBRepository) FindDue(ctx context.Context, userID int64, deckID *int64, now time.Time, limit int) ([]CardProgress, error) {
	query := `SELECT cp.* FROM card_progress cp
		WHERE cp.user_id = ? AND cp.next_review_date IS NOT NULL AND cp.next_review_date <= ?`
	args := []any{userID, now}
	if deckID != nil {
		query = `SELECT cp.* FROM card_progress cp
			JOIN flashcards f ON cp.flashcard_id = f.id
			WHERE cp.user_id = ? AND f.deck_id = ?
			AND cp.next_review_date IS NOT NULL AND cp.next_review_date <= ?`
		args = []any{userID, *deckID, now}
	}
	query += " ORDER BY cp.next_review_date ASC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var progresses []CardProgress
	if err := r.db.SelectContext(ctx, &progresses, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(due card_progress) > %w", err)
	}
	return progresses, nil
}

// FindNew returns cards that have never been reviewed, oldest first.
func (r *DBRepository) FindNew(ctx context.Context, userID int64, deckID *int64, limit int) ([]CardProgress, error) {
	query := `SELECT cp.* FROM card_progress cp
		WHERE cp.user_id = ? AND cp.maturity_level = 'NEW'`
	args := []any{userID}
	if deckID != nil {
		query = `SELECT cp.* FROM card_progress cp
			JOIN flashcards f ON cp.flashcard_id = f.id
			WHERE cp.user_id = ? AND f.deck_id = ? AND cp.maturity_level = 'NEW'`
		args = []any{userID, *deckID}
	}
	query += " ORDER BY cp.id ASC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var progresses []CardProgress
	if err := r.db.SelectContext(ctx, &progresses, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(new card_progress) > %w", err)
	}
	return progresses, nil
}

// FindByDeck returns the learning state of every card in a deck for a user.
func (r *DBRepository) FindByDeck(ctx context.Context, userID, deckID int64) ([]CardProgress, error) {
	var progresses []CardProgress
	if err := r.db.SelectContext(ctx, &progresses,
		`SELECT cp.* FROM card_progress cp
		JOIN flashcards f ON cp.flashcard_id = f.id
		WHERE cp.user_id = ? AND f.deck_id = ?
		ORDER BY cp.id`,
		userID, deckID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(card_progress by deck) > %w", err)
	}
	return progresses, nil
}

// Create inserts a new learning-state row.
func (r *DBRepository) Create(ctx context.Context, ext sqlx.ExtContext, p *CardProgress) error {
	result, err := ext.ExecContext(ctx,
		`INSERT INTO card_progress (user_id, flashcard_id, total_reviews, correct_reviews, wrong_reviews,
			ease_factor, interval_days, repetitions, next_review_date, average_time_seconds,
			last_review_date, maturity_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.FlashcardID, p.TotalReviews, p.CorrectReviews, p.WrongReviews,
		p.EaseFactor, p.IntervalDays, p.Repetitions, p.NextReviewDate, p.AverageTimeSeconds,
		p.LastReviewDate, p.MaturityLevel)
	if err != nil {
		return fmt.Errorf("ext.ExecContext(insert card_progress) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	p.ID = id
	return nil
}

// UpdateReviewed writes the post-review state guarded by an optimistic version
// check. It returns ErrStaleProgress when another writer got there first.
func (r *DBRepository) UpdateReviewed(ctx context.Context, ext sqlx.ExtContext, p *CardProgress, expectedVersion int64) error {
	result, err := ext.ExecContext(ctx,
		`UPDATE card_progress SET total_reviews = ?, correct_reviews = ?, wrong_reviews = ?,
			ease_factor = ?, interval_days = ?, repetitions = ?, next_review_date = ?,
			average_time_seconds = ?, last_review_date = ?, maturity_level = ?, version = version + 1
		WHERE id = ? AND version = ?`,
		p.TotalReviews, p.CorrectReviews, p.WrongReviews,
		p.EaseFactor, p.IntervalDays, p.Repetitions, p.NextReviewDate,
		p.AverageTimeSeconds, p.LastReviewDate, p.MaturityLevel,
		p.ID, expectedVersion)
	if err != nil {
		return fmt.Errorf("ext.ExecContext(update card_progress) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrStaleProgress
	}
	p.Version = expectedVersion + 1
	return nil
}

// DBReviewLogRepository implements ReviewLogRepository using MySQL.
type DBReviewLogRepository struct {
	db *sqlx.DB
}

// NewDBReviewLogRepository creates a new DBReviewLogRepository.
func NewDBReviewLogRepository(db *sqlx.DB) *DBReviewLogRepository {
	return &DBReviewLogRepository{db: db}
}

// Create appends a review log entry. Entries are never updated or deleted.
func (r *DBReviewLogRepository) Create(ctx context.Context, ext sqlx.ExtContext, log *ReviewLog) error {
	result, err := ext.ExecContext(ctx,
		`INSERT INTO review_logs (flashcard_id, user_id, quality, ease_factor, interval_days,
			repetitions, review_date, next_review_date, time_taken_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		log.FlashcardID, log.UserID, log.Quality, log.EaseFactor, log.IntervalDays,
		log.Repetitions, log.ReviewDate, log.NextReviewDate, log.TimeTakenSeconds)
	if err != nil {
		return fmt.Errorf("ext.ExecContext(insert review_log) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	log.ID = id
	return nil
}

// FindByCard returns the review history for a card, most recent first.
func (r *DBReviewLogRepository) FindByCard(ctx context.Context, userID, flashcardID int64) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		`SELECT * FROM review_logs WHERE user_id = ? AND flashcard_id = ?
		ORDER BY review_date DESC`,
		userID, flashcardID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs by card) > %w", err)
	}
	return logs, nil
}

// FindRecent returns reviews submitted since the given time, most recent first.
func (r *DBReviewLogRepository) FindRecent(ctx context.Context, userID int64, since time.Time, limit int) ([]ReviewLog, error) {
	query := `SELECT * FROM review_logs WHERE user_id = ? AND review_date >= ?
		ORDER BY review_date DESC`
	args := []any{userID, since}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(recent review_logs) > %w", err)
	}
	return logs, nil
}
