package progress_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_progress "github.com/hoangnd/flashdeck/internal/mocks/progress"
	"github.com/hoangnd/flashdeck/internal/progress"
	"github.com/hoangnd/flashdeck/internal/scheduler"
)

func newTestService(t *testing.T, progresses progress.Repository, reviewLogs progress.ReviewLogRepository, now time.Time) (*progress.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := progress.NewService(sqlx.NewDb(db, "mysql"), progresses, reviewLogs)
	progress.SetNow(svc, func() time.Time { return now })
	return svc, mock
}

func TestService_SubmitReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	timeTaken := 20

	t.Run("correct answer updates state and logs review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		progresses := mock_progress.NewMockRepository(ctrl)
		reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
		svc, mock := newTestService(t, progresses, reviewLogs, now)

		progresses.EXPECT().
			FindByUserAndCard(gomock.Any(), int64(100), int64(10)).
			Return(&progress.CardProgress{
				ID:                 1,
				UserID:             100,
				FlashcardID:        10,
				TotalReviews:       2,
				CorrectReviews:     1,
				WrongReviews:       1,
				EaseFactor:         2.5,
				IntervalDays:       1,
				Repetitions:        1,
				AverageTimeSeconds: 10.0,
				MaturityLevel:      scheduler.MaturityLearning,
				Version:            2,
			}, nil)

		mock.ExpectBegin()
		var written *progress.CardProgress
		progresses.EXPECT().
			UpdateReviewed(gomock.Any(), gomock.Any(), gomock.Any(), int64(2)).
			DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, p *progress.CardProgress, expectedVersion int64) error {
				written = p
				p.Version = expectedVersion + 1
				return nil
			})
		var loggedReview *progress.ReviewLog
		reviewLogs.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, log *progress.ReviewLog) error {
				loggedReview = log
				return nil
			})
		mock.ExpectCommit()

		got, err := svc.SubmitReview(context.Background(), 100, 10, 4, &timeTaken)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Same(t, written, got)

		// quality 4, repetitions 1, ease 2.5, interval 1: base 6, trunc(1.2*6) = 7
		assert.Equal(t, 2.5, got.EaseFactor)
		assert.Equal(t, 7, got.IntervalDays)
		assert.Equal(t, 2, got.Repetitions)
		assert.Equal(t, scheduler.MaturityYoung, got.MaturityLevel)
		require.NotNil(t, got.NextReviewDate)
		assert.Equal(t, now.AddDate(0, 0, 7), *got.NextReviewDate)
		require.NotNil(t, got.LastReviewDate)
		assert.Equal(t, now, *got.LastReviewDate)

		assert.Equal(t, 3, got.TotalReviews)
		assert.Equal(t, 2, got.CorrectReviews)
		assert.Equal(t, 1, got.WrongReviews)
		assert.Equal(t, got.TotalReviews, got.CorrectReviews+got.WrongReviews)
		// (10.0*2 + 20) / 3 = 13.33
		assert.Equal(t, 13.33, got.AverageTimeSeconds)
		assert.Equal(t, int64(3), got.Version)

		require.NotNil(t, loggedReview)
		assert.Equal(t, 4, loggedReview.Quality)
		assert.Equal(t, 7, loggedReview.IntervalDays)
		assert.Equal(t, now, loggedReview.ReviewDate)
		assert.Equal(t, &timeTaken, loggedReview.TimeTakenSeconds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong answer counts as wrong and resets schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		progresses := mock_progress.NewMockRepository(ctrl)
		reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
		svc, mock := newTestService(t, progresses, reviewLogs, now)

		progresses.EXPECT().
			FindByUserAndCard(gomock.Any(), int64(100), int64(10)).
			Return(&progress.CardProgress{
				ID:             1,
				UserID:         100,
				FlashcardID:    10,
				TotalReviews:   4,
				CorrectReviews: 4,
				EaseFactor:     2.5,
				IntervalDays:   15,
				Repetitions:    3,
				MaturityLevel:  scheduler.MaturityYoung,
				Version:        4,
			}, nil)

		mock.ExpectBegin()
		progresses.EXPECT().
			UpdateReviewed(gomock.Any(), gomock.Any(), gomock.Any(), int64(4)).
			Return(nil)
		reviewLogs.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		mock.ExpectCommit()

		got, err := svc.SubmitReview(context.Background(), 100, 10, 2, nil)
		require.NoError(t, err)

		assert.Equal(t, 0, got.Repetitions)
		assert.Equal(t, 1, got.IntervalDays)
		assert.Equal(t, 2.5, got.EaseFactor)
		assert.Equal(t, scheduler.MaturityNew, got.MaturityLevel)
		assert.Equal(t, 5, got.TotalReviews)
		assert.Equal(t, 4, got.CorrectReviews)
		assert.Equal(t, 1, got.WrongReviews)
		// no time sample: running average untouched
		assert.Equal(t, 0.0, got.AverageTimeSeconds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid quality rejected before any read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		progresses := mock_progress.NewMockRepository(ctrl)
		reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
		svc, _ := newTestService(t, progresses, reviewLogs, now)

		for _, quality := range []int{-1, 6, 100} {
			got, err := svc.SubmitReview(context.Background(), 100, 10, quality, nil)
			assert.ErrorIs(t, err, scheduler.ErrInvalidQuality)
			assert.Nil(t, got)
		}
	})

	t.Run("progress not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		progresses := mock_progress.NewMockRepository(ctrl)
		reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
		svc, _ := newTestService(t, progresses, reviewLogs, now)

		progresses.EXPECT().
			FindByUserAndCard(gomock.Any(), int64(100), int64(10)).
			Return(nil, progress.ErrProgressNotFound)

		got, err := svc.SubmitReview(context.Background(), 100, 10, 4, nil)
		assert.ErrorIs(t, err, progress.ErrProgressNotFound)
		assert.Nil(t, got)
	})

	t.Run("stale version retries from a fresh read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		progresses := mock_progress.NewMockRepository(ctrl)
		reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
		svc, mock := newTestService(t, progresses, reviewLogs, now)

		first := progresses.EXPECT().
			FindByUserAndCard(gomock.Any(), int64(100), int64(10)).
			Return(&progress.CardProgress{ID: 1, UserID: 100, FlashcardID: 10, EaseFactor: 2.5, Version: 2}, nil)
		progresses.EXPECT().
			FindByUserAndCard(gomock.Any(), int64(100), int64(10)).
			Return(&progress.CardProgress{ID: 1, UserID: 100, FlashcardID: 10, EaseFactor: 2.5, Version: 3}, nil).
			After(first)

		mock.ExpectBegin()
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectCommit()

		staleUpdate := progresses.EXPECT().
			UpdateReviewed(gomock.Any(), gomock.Any(), gomock.Any(), int64(2)).
			Return(progress.ErrStaleProgress)
		progresses.EXPECT().
			UpdateReviewed(gomock.Any(), gomock.Any(), gomock.Any(), int64(3)).
			Return(nil).
			After(staleUpdate)
		reviewLogs.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		got, err := svc.SubmitReview(context.Background(), 100, 10, 5, nil)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up after repeated version conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		progresses := mock_progress.NewMockRepository(ctrl)
		reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
		svc, mock := newTestService(t, progresses, reviewLogs, now)

		progresses.EXPECT().
			FindByUserAndCard(gomock.Any(), int64(100), int64(10)).
			Return(&progress.CardProgress{ID: 1, UserID: 100, FlashcardID: 10, EaseFactor: 2.5, Version: 2}, nil).
			Times(progress.SubmitRetryAttempts)
		progresses.EXPECT().
			UpdateReviewed(gomock.Any(), gomock.Any(), gomock.Any(), int64(2)).
			Return(progress.ErrStaleProgress).
			Times(progress.SubmitRetryAttempts)
		for i := 0; i < progress.SubmitRetryAttempts; i++ {
			mock.ExpectBegin()
			mock.ExpectRollback()
		}

		got, err := svc.SubmitReview(context.Background(), 100, 10, 5, nil)
		assert.ErrorIs(t, err, progress.ErrStaleProgress)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("review log failure rolls back the progress update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		progresses := mock_progress.NewMockRepository(ctrl)
		reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
		svc, mock := newTestService(t, progresses, reviewLogs, now)

		progresses.EXPECT().
			FindByUserAndCard(gomock.Any(), int64(100), int64(10)).
			Return(&progress.CardProgress{ID: 1, UserID: 100, FlashcardID: 10, EaseFactor: 2.5, Version: 0}, nil)
		progresses.EXPECT().
			UpdateReviewed(gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).
			Return(nil)
		reviewLogs.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("insert failed"))
		mock.ExpectBegin()
		mock.ExpectRollback()

		got, err := svc.SubmitReview(context.Background(), 100, 10, 4, nil)
		assert.Error(t, err)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestService_InitializeCardProgress(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	progresses := mock_progress.NewMockRepository(ctrl)
	reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
	svc, _ := newTestService(t, progresses, reviewLogs, now)

	progresses.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, p *progress.CardProgress) error {
			p.ID = 9
			return nil
		})

	got, err := svc.InitializeCardProgress(context.Background(), 100, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, scheduler.MaturityNew, got.MaturityLevel)
	assert.Equal(t, scheduler.DefaultEaseFactor, got.EaseFactor)
	assert.Equal(t, 0, got.TotalReviews)
	assert.Nil(t, got.NextReviewDate)
}

func TestService_DueCards(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	deckID := int64(5)

	ctrl := gomock.NewController(t)
	progresses := mock_progress.NewMockRepository(ctrl)
	reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
	svc, _ := newTestService(t, progresses, reviewLogs, now)

	progresses.EXPECT().
		FindDue(gomock.Any(), int64(100), &deckID, now, 50).
		Return([]progress.CardProgress{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.DueCards(context.Background(), 100, &deckID, 50)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_DeckStats(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -1)

	ctrl := gomock.NewController(t)
	progresses := mock_progress.NewMockRepository(ctrl)
	reviewLogs := mock_progress.NewMockReviewLogRepository(ctrl)
	svc, _ := newTestService(t, progresses, reviewLogs, now)

	progresses.EXPECT().
		FindByDeck(gomock.Any(), int64(100), int64(5)).
		Return([]progress.CardProgress{
			{MaturityLevel: scheduler.MaturityNew},
			{MaturityLevel: scheduler.MaturityYoung, NextReviewDate: &overdue,
				TotalReviews: 4, CorrectReviews: 3, AverageTimeSeconds: 12.0},
		}, nil)

	got, err := svc.DeckStats(context.Background(), 100, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.DeckID)
	assert.Equal(t, 2, got.TotalCards)
	assert.Equal(t, 1, got.DueCards)
	assert.Equal(t, 0.75, got.OverallAccuracy)
}
