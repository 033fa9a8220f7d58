package deck

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hoangnd/flashdeck/internal/database"
	"github.com/hoangnd/flashdeck/internal/progress"
)

// Service coordinates deck and flashcard management. Card creation also seeds
// the card's learning state so every card enters the study queue as NEW.
type Service struct {
	db         *sqlx.DB
	decks      DeckRepository
	cards      CardRepository
	progresses progress.Repository
}

// NewService creates a new Service.
func NewService(db *sqlx.DB, decks DeckRepository, cards CardRepository, progresses progress.Repository) *Service {
	return &Service{
		db:         db,
		decks:      decks,
		cards:      cards,
		progresses: progresses,
	}
}

// CreateDeck creates an empty deck for a user.
func (s *Service) CreateDeck(ctx context.Context, deck *Deck) error {
	if err := s.decks.Create(ctx, deck); err != nil {
		return fmt.Errorf("decks.Create() > %w", err)
	}
	return nil
}

// Decks returns all decks owned by a user, newest first.
func (s *Service) Decks(ctx context.Context, userID int64) ([]Deck, error) {
	decks, err := s.decks.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("decks.FindByUser() > %w", err)
	}
	return decks, nil
}

// Deck returns a single deck, checking ownership.
func (s *Service) Deck(ctx context.Context, deckID, userID int64) (*Deck, error) {
	return s.decks.FindByIDAndUser(ctx, deckID, userID)
}

// UpdateDeck saves changes to a deck, checking ownership.
func (s *Service) UpdateDeck(ctx context.Context, deck *Deck) error {
	return s.decks.Update(ctx, deck)
}

// DeleteDeck removes a deck with all its cards, progress and review history.
func (s *Service) DeleteDeck(ctx context.Context, deckID, userID int64) error {
	return s.decks.Delete(ctx, deckID, userID)
}

// Cards returns all flashcards in a deck, checking deck ownership first.
func (s *Service) Cards(ctx context.Context, deckID, userID int64) ([]Card, error) {
	if _, err := s.decks.FindByIDAndUser(ctx, deckID, userID); err != nil {
		return nil, err
	}
	cards, err := s.cards.FindByDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("cards.FindByDeck() > %w", err)
	}
	return cards, nil
}

// Card returns a single flashcard, checking ownership.
func (s *Service) Card(ctx context.Context, cardID, userID int64) (*Card, error) {
	return s.cards.FindByIDAndUser(ctx, cardID, userID)
}

// CreateCard inserts a flashcard together with its initial learning state.
// Both rows commit atomically so a card can never exist without progress.
func (s *Service) CreateCard(ctx context.Context, card *Card) error {
	if _, err := s.decks.FindByIDAndUser(ctx, card.DeckID, card.UserID); err != nil {
		return err
	}
	if card.SourceType == "" {
		card.SourceType = SourceManual
	}

	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.cards.Create(ctx, tx, card); err != nil {
			return err
		}
		p := progress.NewCardProgress(card.UserID, card.ID)
		if err := s.progresses.Create(ctx, tx, p); err != nil {
			return fmt.Errorf("progresses.Create() > %w", err)
		}
		return nil
	})
}

// UpdateCard saves changes to a flashcard, checking ownership. Scheduling
// state is untouched: editing content never resets learning progress.
func (s *Service) UpdateCard(ctx context.Context, card *Card) error {
	return s.cards.Update(ctx, card)
}

// DeleteCard removes a flashcard with its progress and review history.
func (s *Service) DeleteCard(ctx context.Context, cardID, userID int64) error {
	return s.cards.Delete(ctx, cardID, userID)
}

// CardCount returns the number of flashcards in a deck.
func (s *Service) CardCount(ctx context.Context, deckID int64) (int64, error) {
	count, err := s.cards.CountByDeck(ctx, deckID)
	if err != nil {
		return 0, fmt.Errorf("cards.CountByDeck() > %w", err)
	}
	return count, nil
}
