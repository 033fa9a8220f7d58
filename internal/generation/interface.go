// Package generation requests flashcard suggestions from an external
// generation service and tracks each request in the database.
package generation

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/generation/mock_client.go -package=mock_generation

// Client defines the call to the card generation service.
type Client interface {
	GenerateCards(ctx context.Context, params GenerateCardsRequest) (GenerateCardsResponse, error)
}

// GenerateCardsRequest holds the generation parameters sent to the service.
type GenerateCardsRequest struct {
	Topic     string `json:"topic"`
	CardCount int    `json:"card_count"`
	Language  string `json:"language,omitempty"`
}

// GenerateCardsResponse is the set of suggested cards returned by the service.
type GenerateCardsResponse struct {
	Cards []CardSuggestion `json:"cards"`
}

// CardSuggestion is one generated flashcard before it is accepted into a deck.
type CardSuggestion struct {
	Front       string   `json:"front"`
	Back        string   `json:"back"`
	Hint        string   `json:"hint,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

const (
	// DefaultMaxRetryAttempts bounds retries of the generation HTTP call.
	DefaultMaxRetryAttempts = 3
)
