package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrInvalidSessionType is returned when a session is started with an unknown type.
var ErrInvalidSessionType = errors.New("invalid session type")

// Service coordinates the study session lifecycle.
type Service struct {
	db       *sqlx.DB
	sessions Repository
	now      func() time.Time
}

// NewService creates a new Service.
func NewService(db *sqlx.DB, sessions Repository) *Service {
	return &Service{
		db:       db,
		sessions: sessions,
		now:      time.Now,
	}
}

// StartSession opens a new study session. A user can only run one session at
// a time; starting while another is open returns ErrSessionAlreadyOpen.
func (s *Service) StartSession(ctx context.Context, userID int64, deckID *int64, sessionType string) (*StudySession, error) {
	switch sessionType {
	case TypeReview, TypeLearnNew, TypeCramming, TypeMixed:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSessionType, sessionType)
	}

	open, err := s.sessions.FindOpenByUser(ctx, userID)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return nil, fmt.Errorf("sessions.FindOpenByUser() > %w", err)
	}
	if open != nil {
		return nil, fmt.Errorf("%w: session %d started at %s",
			ErrSessionAlreadyOpen, open.ID, open.StartTime.Format(time.RFC3339))
	}

	session := &StudySession{
		UserID:      userID,
		DeckID:      deckID,
		SessionType: sessionType,
		StartTime:   s.now(),
	}
	if err := s.sessions.Create(ctx, s.db, session); err != nil {
		return nil, fmt.Errorf("sessions.Create() > %w", err)
	}
	return session, nil
}

// RecordAnswer accumulates one answered card into the session counters.
func (s *Service) RecordAnswer(ctx context.Context, userID, sessionID int64, correct bool, timeTakenSeconds int) (*StudySession, error) {
	session, err := s.sessions.FindByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.EndTime != nil {
		return nil, ErrSessionClosed
	}

	session.CardsStudied++
	if correct {
		session.CardsCorrect++
	} else {
		session.CardsWrong++
	}
	if timeTakenSeconds > 0 {
		session.TotalTimeSeconds += timeTakenSeconds
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("sessions.Update() > %w", err)
	}
	return session, nil
}

// EndSession closes a running session. Ending an already finished session
// returns ErrSessionClosed.
func (s *Service) EndSession(ctx context.Context, userID, sessionID int64) (*StudySession, error) {
	session, err := s.sessions.FindByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.EndTime != nil {
		return nil, ErrSessionClosed
	}

	now := s.now()
	session.EndTime = &now
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("sessions.Update() > %w", err)
	}
	return session, nil
}

// OpenSession returns the user's running session, or ErrSessionNotFound.
func (s *Service) OpenSession(ctx context.Context, userID int64) (*StudySession, error) {
	return s.sessions.FindOpenByUser(ctx, userID)
}

// RecentSessions returns the user's latest sessions, most recent first.
func (s *Service) RecentSessions(ctx context.Context, userID int64, limit int) ([]StudySession, error) {
	sessions, err := s.sessions.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("sessions.FindRecent() > %w", err)
	}
	return sessions, nil
}
