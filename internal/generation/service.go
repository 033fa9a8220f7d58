package generation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hoangnd/flashdeck/internal/database"
	"github.com/hoangnd/flashdeck/internal/deck"
	"github.com/hoangnd/flashdeck/internal/progress"
)

// Service requests cards from the generation service and imports the accepted
// suggestions into a deck. Every request is tracked in generation_requests so
// failures stay visible.
type Service struct {
	db         *sqlx.DB
	client     Client
	requests   Repository
	decks      deck.DeckRepository
	cards      deck.CardRepository
	progresses progress.Repository
}

// NewService creates a new Service.
func NewService(
	db *sqlx.DB,
	client Client,
	requests Repository,
	decks deck.DeckRepository,
	cards deck.CardRepository,
	progresses progress.Repository,
) *Service {
	return &Service{
		db:         db,
		client:     client,
		requests:   requests,
		decks:      decks,
		cards:      cards,
		progresses: progresses,
	}
}

// GenerateCards asks the generation service for cards on a topic and inserts
// them into the deck as AI_GENERATED, each with its initial learning state.
// The tracked request ends in COMPLETED or FAILED.
func (s *Service) GenerateCards(ctx context.Context, userID, deckID int64, topic string, cardCount int) ([]deck.Card, error) {
	if _, err := s.decks.FindByIDAndUser(ctx, deckID, userID); err != nil {
		return nil, err
	}

	request := &Request{
		UserID: userID,
		DeckID: deckID,
		Topic:  topic,
		Status: StatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("requests.Create() > %w", err)
	}

	response, err := s.client.GenerateCards(ctx, GenerateCardsRequest{
		Topic:     topic,
		CardCount: cardCount,
	})
	if err != nil {
		s.markFailed(ctx, request, err)
		return nil, fmt.Errorf("client.GenerateCards() > %w", err)
	}

	cards, err := s.importSuggestions(ctx, userID, deckID, request.ID, response.Cards)
	if err != nil {
		s.markFailed(ctx, request, err)
		return nil, err
	}

	request.Status = StatusCompleted
	request.CardCount = len(cards)
	if err := s.requests.UpdateStatus(ctx, request); err != nil {
		return nil, fmt.Errorf("requests.UpdateStatus() > %w", err)
	}
	return cards, nil
}

// importSuggestions inserts all suggested cards and their progress rows in one
// transaction: a partial import would leave cards invisible to the scheduler.
func (s *Service) importSuggestions(ctx context.Context, userID, deckID, requestID int64, suggestions []CardSuggestion) ([]deck.Card, error) {
	cards := make([]deck.Card, 0, len(suggestions))
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, suggestion := range suggestions {
			card := deck.Card{
				DeckID:           deckID,
				UserID:           userID,
				Front:            suggestion.Front,
				Back:             suggestion.Back,
				Hint:             suggestion.Hint,
				Explanation:      suggestion.Explanation,
				SourceType:       deck.SourceAIGenerated,
				SourceMaterialID: &requestID,
			}
			if len(suggestion.Tags) > 0 {
				encoded, err := json.Marshal(suggestion.Tags)
				if err != nil {
					return fmt.Errorf("json.Marshal(tags) > %w", err)
				}
				tags := string(encoded)
				card.Tags = &tags
			}

			if err := s.cards.Create(ctx, tx, &card); err != nil {
				return err
			}
			if err := s.progresses.Create(ctx, tx, progress.NewCardProgress(userID, card.ID)); err != nil {
				return fmt.Errorf("progresses.Create() > %w", err)
			}
			cards = append(cards, card)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *Service) markFailed(ctx context.Context, request *Request, cause error) {
	message := cause.Error()
	request.Status = StatusFailed
	request.ErrorMessage = &message
	// The original failure is what the caller needs to see.
	_ = s.requests.UpdateStatus(ctx, request)
}

// Requests returns the user's generation requests, most recent first.
func (s *Service) Requests(ctx context.Context, userID int64, limit int) ([]Request, error) {
	requests, err := s.requests.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("requests.FindByUser() > %w", err)
	}
	return requests, nil
}
