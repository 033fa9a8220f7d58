package deckfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hoangnd/flashdeck/internal/deck"
)

// ImportResult tracks counts for one import operation.
type ImportResult struct {
	DeckID       int64
	CardsNew     int
	CardsSkipped int
}

// Importer reads YAML deck files and writes them to the database.
type Importer struct {
	decks  *deck.Service
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(decks *deck.Service, writer io.Writer) *Importer {
	return &Importer{
		decks:  decks,
		writer: writer,
	}
}

// Import creates a new deck from a deck file. Every card is inserted as
// IMPORTED with a fresh learning state; cards with an empty front or back are
// skipped and reported.
func (imp *Importer) Import(ctx context.Context, userID int64, file File) (*ImportResult, error) {
	d := &deck.Deck{
		UserID:      userID,
		Name:        file.Name,
		Description: file.Description,
		Color:       file.Color,
		Icon:        file.Icon,
	}
	if err := imp.decks.CreateDeck(ctx, d); err != nil {
		return nil, fmt.Errorf("decks.CreateDeck() > %w", err)
	}

	result := ImportResult{DeckID: d.ID}
	for _, entry := range file.Cards {
		if entry.Front == "" || entry.Back == "" {
			result.CardsSkipped++
			fmt.Fprintf(imp.writer, "skipping card with empty front or back: %q / %q\n", entry.Front, entry.Back)
			continue
		}

		card := deck.Card{
			DeckID:      d.ID,
			UserID:      userID,
			Front:       entry.Front,
			Back:        entry.Back,
			Hint:        entry.Hint,
			Explanation: entry.Explanation,
			SourceType:  deck.SourceImported,
		}
		if len(entry.Tags) > 0 {
			encoded, err := json.Marshal(entry.Tags)
			if err != nil {
				return nil, fmt.Errorf("json.Marshal(tags) > %w", err)
			}
			tags := string(encoded)
			card.Tags = &tags
		}

		if err := imp.decks.CreateCard(ctx, &card); err != nil {
			return nil, fmt.Errorf("decks.CreateCard() > %w", err)
		}
		result.CardsNew++
	}
	return &result, nil
}
