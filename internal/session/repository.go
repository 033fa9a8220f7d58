package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

// Create inserts a new study session.
func (r *DBRepository) Create(ctx context.Context, ext sqlx.ExtContext, session *StudySession) error {
	result, err := ext.ExecContext(ctx,
		`INSERT INTO study_sessions (user_id, deck_id, session_type, start_time, end_time,
			cards_studied, cards_correct, cards_wrong, total_time_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.UserID, session.DeckID, session.SessionType, session.StartTime, session.EndTime,
		session.CardsStudied, session.CardsCorrect, session.CardsWrong, session.TotalTimeSeconds)
	if err != nil {
		return fmt.Errorf("ext.ExecContext(insert study_session) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	session.ID = id
	return nil
}

// FindByIDAndUser returns a session by id, checking ownership.
func (r *DBRepository) FindByIDAndUser(ctx context.Context, sessionID, userID int64) (*StudySession, error) {
	var s StudySession
	err := r.db.GetContext(ctx, &s,
		"SELECT * FROM study_sessions WHERE id = ? AND user_id = ?", sessionID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(study_session) > %w", err)
	}
	return &s, nil
}

// FindOpenByUser returns the user's running session, or ErrSessionNotFound
// when none is open. At most one session is open per user.
func (r *DBRepository) FindOpenByUser(ctx context.Context, userID int64) (*StudySession, error) {
	var s StudySession
	err := r.db.GetContext(ctx, &s,
		`SELECT * FROM study_sessions WHERE user_id = ? AND end_time IS NULL
		ORDER BY start_time DESC LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(open study_session) > %w", err)
	}
	return &s, nil
}

// Update saves the session counters and end time.
func (r *DBRepository) Update(ctx context.Context, session *StudySession) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE study_sessions SET end_time = ?, cards_studied = ?, cards_correct = ?,
			cards_wrong = ?, total_time_seconds = ?
		WHERE id = ? AND user_id = ?`,
		session.EndTime, session.CardsStudied, session.CardsCorrect,
		session.CardsWrong, session.TotalTimeSeconds,
		session.ID, session.UserID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update study_session) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// FindRecent returns the user's latest sessions, most recent first.
func (r *DBRepository) FindRecent(ctx context.Context, userID int64, limit int) ([]StudySession, error) {
	query := "SELECT * FROM study_sessions WHERE user_id = ? ORDER BY start_time DESC"
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var sessions []StudySession
	if err := r.db.SelectContext(ctx, &sessions, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(study_sessions) > %w", err)
	}
	return sessions, nil
}
