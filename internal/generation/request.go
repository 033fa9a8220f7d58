package generation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=request.go -destination=../mocks/generation/mock_repository.go -package=mock_generation

// ErrRequestNotFound is returned when a generation request does not exist.
var ErrRequestNotFound = errors.New("generation request not found")

// Generation request statuses.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Request is one tracked call to the generation service.
type Request struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	DeckID       int64     `db:"deck_id"`
	Topic        string    `db:"topic"`
	CardCount    int       `db:"card_count"`
	Status       string    `db:"status"`
	ErrorMessage *string   `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Repository defines operations for tracking generation requests.
type Repository interface {
	Create(ctx context.Context, request *Request) error
	UpdateStatus(ctx context.Context, request *Request) error
	FindByUser(ctx context.Context, userID int64, limit int) ([]Request, error)
	FindByIDAndUser(ctx context.Context, requestID, userID int64) (*Request, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts a new request row, normally in status PENDING.
func (r *DBRepository) Create(ctx context.Context, request *Request) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO generation_requests (user_id, deck_id, topic, card_count, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?)`,
		request.UserID, request.DeckID, request.Topic, request.CardCount,
		request.Status, request.ErrorMessage)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert generation_request) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	request.ID = id
	return nil
}

// UpdateStatus saves the request outcome.
func (r *DBRepository) UpdateStatus(ctx context.Context, request *Request) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE generation_requests SET status = ?, card_count = ?, error_message = ?
		WHERE id = ?`,
		request.Status, request.CardCount, request.ErrorMessage, request.ID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update generation_request) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// FindByUser returns the user's generation requests, most recent first.
func (r *DBRepository) FindByUser(ctx context.Context, userID int64, limit int) ([]Request, error) {
	query := "SELECT * FROM generation_requests WHERE user_id = ? ORDER BY created_at DESC"
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var requests []Request
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(generation_requests) > %w", err)
	}
	return requests, nil
}

// FindByIDAndUser returns a request by id, checking ownership.
func (r *DBRepository) FindByIDAndUser(ctx context.Context, requestID, userID int64) (*Request, error) {
	var request Request
	err := r.db.GetContext(ctx, &request,
		"SELECT * FROM generation_requests WHERE id = ? AND user_id = ?", requestID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(generation_request) > %w", err)
	}
	return &request, nil
}
