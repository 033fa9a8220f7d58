package deck_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hoangnd/flashdeck/internal/deck"
	mock_deck "github.com/hoangnd/flashdeck/internal/mocks/deck"
	mock_progress "github.com/hoangnd/flashdeck/internal/mocks/progress"
	"github.com/hoangnd/flashdeck/internal/progress"
	"github.com/hoangnd/flashdeck/internal/scheduler"
)

type serviceMocks struct {
	decks      *mock_deck.MockDeckRepository
	cards      *mock_deck.MockCardRepository
	progresses *mock_progress.MockRepository
	dbMock     sqlmock.Sqlmock
}

func newTestService(t *testing.T) (*deck.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mocks := serviceMocks{
		decks:      mock_deck.NewMockDeckRepository(ctrl),
		cards:      mock_deck.NewMockCardRepository(ctrl),
		progresses: mock_progress.NewMockRepository(ctrl),
		dbMock:     dbMock,
	}
	svc := deck.NewService(sqlx.NewDb(db, "mysql"), mocks.decks, mocks.cards, mocks.progresses)
	return svc, mocks
}

func TestService_CreateCard(t *testing.T) {
	t.Run("creates card and seeds progress in one transaction", func(t *testing.T) {
		svc, mocks := newTestService(t)

		mocks.decks.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(5), int64(100)).
			Return(&deck.Deck{ID: 5, UserID: 100, Name: "JLPT N2 Grammar"}, nil)

		mocks.dbMock.ExpectBegin()
		mocks.cards.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, card *deck.Card) error {
				card.ID = 9
				return nil
			})
		var seeded *progress.CardProgress
		mocks.progresses.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlx.ExtContext, p *progress.CardProgress) error {
				seeded = p
				return nil
			})
		mocks.dbMock.ExpectCommit()

		card := &deck.Card{DeckID: 5, UserID: 100, Front: "〜ばかりに", Back: "just because"}
		err := svc.CreateCard(context.Background(), card)
		require.NoError(t, err)
		assert.Equal(t, int64(9), card.ID)
		assert.Equal(t, deck.SourceManual, card.SourceType)

		require.NotNil(t, seeded)
		assert.Equal(t, int64(100), seeded.UserID)
		assert.Equal(t, int64(9), seeded.FlashcardID)
		assert.Equal(t, scheduler.MaturityNew, seeded.MaturityLevel)
		assert.Equal(t, scheduler.DefaultEaseFactor, seeded.EaseFactor)

		assert.NoError(t, mocks.dbMock.ExpectationsWereMet())
	})

	t.Run("deck owned by another user", func(t *testing.T) {
		svc, mocks := newTestService(t)

		mocks.decks.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(5), int64(100)).
			Return(nil, deck.ErrDeckNotFound)

		err := svc.CreateCard(context.Background(), &deck.Card{DeckID: 5, UserID: 100, Front: "f", Back: "b"})
		assert.ErrorIs(t, err, deck.ErrDeckNotFound)
	})

	t.Run("progress seed failure rolls back the card insert", func(t *testing.T) {
		svc, mocks := newTestService(t)

		mocks.decks.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(5), int64(100)).
			Return(&deck.Deck{ID: 5, UserID: 100}, nil)

		mocks.dbMock.ExpectBegin()
		mocks.cards.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		mocks.progresses.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("insert failed"))
		mocks.dbMock.ExpectRollback()

		err := svc.CreateCard(context.Background(), &deck.Card{DeckID: 5, UserID: 100, Front: "f", Back: "b"})
		assert.Error(t, err)

		assert.NoError(t, mocks.dbMock.ExpectationsWereMet())
	})

	t.Run("keeps source type for imported cards", func(t *testing.T) {
		svc, mocks := newTestService(t)

		mocks.decks.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(5), int64(100)).
			Return(&deck.Deck{ID: 5, UserID: 100}, nil)

		mocks.dbMock.ExpectBegin()
		mocks.cards.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mocks.progresses.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mocks.dbMock.ExpectCommit()

		card := &deck.Card{DeckID: 5, UserID: 100, Front: "f", Back: "b", SourceType: deck.SourceImported}
		err := svc.CreateCard(context.Background(), card)
		require.NoError(t, err)
		assert.Equal(t, deck.SourceImported, card.SourceType)
	})
}

func TestService_Cards(t *testing.T) {
	t.Run("returns cards of an owned deck", func(t *testing.T) {
		svc, mocks := newTestService(t)

		mocks.decks.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(5), int64(100)).
			Return(&deck.Deck{ID: 5, UserID: 100}, nil)
		mocks.cards.EXPECT().
			FindByDeck(gomock.Any(), int64(5)).
			Return([]deck.Card{{ID: 1}, {ID: 2}}, nil)

		got, err := svc.Cards(context.Background(), 5, 100)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("ownership check fails", func(t *testing.T) {
		svc, mocks := newTestService(t)

		mocks.decks.EXPECT().
			FindByIDAndUser(gomock.Any(), int64(5), int64(100)).
			Return(nil, deck.ErrDeckNotFound)

		got, err := svc.Cards(context.Background(), 5, 100)
		assert.ErrorIs(t, err, deck.ErrDeckNotFound)
		assert.Nil(t, got)
	})
}

func TestService_CreateDeck(t *testing.T) {
	svc, mocks := newTestService(t)

	mocks.decks.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *deck.Deck) error {
			d.ID = 5
			return nil
		})

	d := &deck.Deck{UserID: 100, Name: "JLPT N2 Grammar"}
	err := svc.CreateDeck(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.ID)
}
