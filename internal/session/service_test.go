package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_session "github.com/hoangnd/flashdeck/internal/mocks/session"
	"github.com/hoangnd/flashdeck/internal/session"
)

func newTestService(t *testing.T, now time.Time) (*session.Service, *mock_session.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sessions := mock_session.NewMockRepository(ctrl)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := session.NewService(sqlx.NewDb(db, "mysql"), sessions)
	session.SetNow(svc, func() time.Time { return now })
	return svc, sessions
}

func TestService_StartSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	deckID := int64(5)

	t.Run("starts a session", func(t *testing.T) {
		svc, sessions := newTestService(t, now)

		sessions.EXPECT().
			FindOpenByUser(gomock.Any(), int64(100)).
			Return(nil, session.ErrSessionNotFound)
		sessions.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, s *session.StudySession) error {
				s.ID = 3
				return nil
			})

		got, err := svc.StartSession(context.Background(), 100, &deckID, session.TypeReview)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, session.TypeReview, got.SessionType)
		assert.Equal(t, now, got.StartTime)
		assert.Nil(t, got.EndTime)
		assert.Equal(t, &deckID, got.DeckID)
	})

	t.Run("rejects a second open session", func(t *testing.T) {
		svc, sessions := newTestService(t, now)

		sessions.EXPECT().
			FindOpenByUser(gomock.Any(), int64(100)).
			Return(&session.StudySession{ID: 2, UserID: 100, StartTime: now.Add(-10 * time.Minute)}, nil)

		got, err := svc.StartSession(context.Background(), 100, nil, session.TypeMixed)
		assert.ErrorIs(t, err, session.ErrSessionAlreadyOpen)
		assert.Nil(t, got)
	})

	t.Run("rejects an unknown session type", func(t *testing.T) {
		svc, _ := newTestService(t, now)

		got, err := svc.StartSession(context.Background(), 100, nil, "SPEED_RUN")
		assert.ErrorIs(t, err, session.ErrInvalidSessionType)
		assert.Nil(t, got)
	})
}

func TestService_RecordAnswer(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("accumulates counters", func(t *testing.T) {
		svc, sessions := newTestService(t, now)

		sessions.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(3), int64(100)).
			Return(&session.StudySession{
				ID: 3, UserID: 100, SessionType: session.TypeReview, StartTime: now,
				CardsStudied: 2, CardsCorrect: 1, CardsWrong: 1, TotalTimeSeconds: 40,
			}, nil)
		sessions.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		got, err := svc.RecordAnswer(context.Background(), 100, 3, true, 15)
		require.NoError(t, err)
		assert.Equal(t, 3, got.CardsStudied)
		assert.Equal(t, 2, got.CardsCorrect)
		assert.Equal(t, 1, got.CardsWrong)
		assert.Equal(t, got.CardsStudied, got.CardsCorrect+got.CardsWrong)
		assert.Equal(t, 55, got.TotalTimeSeconds)
	})

	t.Run("finished session rejects answers", func(t *testing.T) {
		svc, sessions := newTestService(t, now)

		end := now.Add(-time.Hour)
		sessions.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(3), int64(100)).
			Return(&session.StudySession{ID: 3, UserID: 100, EndTime: &end}, nil)

		got, err := svc.RecordAnswer(context.Background(), 100, 3, false, 10)
		assert.ErrorIs(t, err, session.ErrSessionClosed)
		assert.Nil(t, got)
	})
}

func TestService_EndSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("closes an open session", func(t *testing.T) {
		svc, sessions := newTestService(t, now)

		sessions.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(3), int64(100)).
			Return(&session.StudySession{ID: 3, UserID: 100, StartTime: now.Add(-20 * time.Minute)}, nil)
		sessions.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		got, err := svc.EndSession(context.Background(), 100, 3)
		require.NoError(t, err)
		require.NotNil(t, got.EndTime)
		assert.Equal(t, now, *got.EndTime)
	})

	t.Run("ending twice fails", func(t *testing.T) {
		svc, sessions := newTestService(t, now)

		end := now.Add(-time.Minute)
		sessions.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(3), int64(100)).
			Return(&session.StudySession{ID: 3, UserID: 100, EndTime: &end}, nil)

		got, err := svc.EndSession(context.Background(), 100, 3)
		assert.ErrorIs(t, err, session.ErrSessionClosed)
		assert.Nil(t, got)
	})

	t.Run("session owned by another user", func(t *testing.T) {
		svc, sessions := newTestService(t, now)

		sessions.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(3), int64(100)).
			Return(nil, session.ErrSessionNotFound)

		got, err := svc.EndSession(context.Background(), 100, 3)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		assert.Nil(t, got)
	})
}

func TestStudySession_Accuracy(t *testing.T) {
	assert.Equal(t, 0.0, (&session.StudySession{}).Accuracy())
	assert.Equal(t, 0.75, (&session.StudySession{CardsStudied: 4, CardsCorrect: 3}).Accuracy())
}
