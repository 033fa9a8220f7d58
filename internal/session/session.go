// Package session tracks study sessions: when a user studied, what they
// studied and how well it went.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=session.go -destination=../mocks/session/mock_repository.go -package=mock_session

// ErrSessionNotFound is returned when a session does not exist or belongs to another user.
var ErrSessionNotFound = errors.New("study session not found")

// ErrSessionAlreadyOpen is returned when a user tries to start a session
// while another one is still running.
var ErrSessionAlreadyOpen = errors.New("a study session is already open")

// ErrSessionClosed is returned when answers are recorded against a finished session.
var ErrSessionClosed = errors.New("study session is already finished")

// Session types.
const (
	TypeReview   = "REVIEW"
	TypeLearnNew = "LEARN_NEW"
	TypeCramming = "CRAMMING"
	TypeMixed    = "MIXED"
)

// StudySession is one sitting of card study. A session is open until EndTime
// is set; counters accumulate while it runs.
type StudySession struct {
	ID               int64      `db:"id"`
	UserID           int64      `db:"user_id"`
	DeckID           *int64     `db:"deck_id"`
	SessionType      string     `db:"session_type"`
	StartTime        time.Time  `db:"start_time"`
	EndTime          *time.Time `db:"end_time"`
	CardsStudied     int        `db:"cards_studied"`
	CardsCorrect     int        `db:"cards_correct"`
	CardsWrong       int        `db:"cards_wrong"`
	TotalTimeSeconds int        `db:"total_time_seconds"`
	CreatedAt        time.Time  `db:"created_at"`
}

// Accuracy returns the fraction of correct answers in this session, 0.0 when
// nothing was studied yet.
func (s *StudySession) Accuracy() float64 {
	if s.CardsStudied == 0 {
		return 0.0
	}
	return float64(s.CardsCorrect) / float64(s.CardsStudied)
}

// Repository defines operations for managing study sessions.
type Repository interface {
	Create(ctx context.Context, ext sqlx.ExtContext, session *StudySession) error
	FindByIDAndUser(ctx context.Context, sessionID, userID int64) (*StudySession, error)
	FindOpenByUser(ctx context.Context, userID int64) (*StudySession, error)
	Update(ctx context.Context, session *StudySession) error
	FindRecent(ctx context.Context, userID int64, limit int) ([]StudySession, error)
}
