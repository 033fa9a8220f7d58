// Package deck provides deck and flashcard domain models and repositories.
package deck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/deck/mock_repository.go -package=mock_deck

// ErrDeckNotFound is returned when a deck does not exist or belongs to another user.
var ErrDeckNotFound = errors.New("deck not found")

// ErrCardNotFound is returned when a flashcard does not exist or belongs to another user.
var ErrCardNotFound = errors.New("flashcard not found")

// Source types for flashcards.
const (
	SourceManual      = "MANUAL"
	SourceAIGenerated = "AI_GENERATED"
	SourceImported    = "IMPORTED"
)

// Deck represents a collection of flashcards owned by a user.
type Deck struct {
	ID          int64     `db:"id" yaml:"id"`
	UserID      int64     `db:"user_id" yaml:"user_id"`
	Name        string    `db:"name" yaml:"name"`
	Description string    `db:"description" yaml:"description,omitempty"`
	Color       string    `db:"color" yaml:"color,omitempty"`
	Icon        string    `db:"icon" yaml:"icon,omitempty"`
	IsPublic    bool      `db:"is_public" yaml:"is_public"`
	CreatedAt   time.Time `db:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" yaml:"updated_at"`
}

// Card represents a single flashcard.
type Card struct {
	ID               int64     `db:"id" yaml:"id"`
	DeckID           int64     `db:"deck_id" yaml:"deck_id"`
	UserID           int64     `db:"user_id" yaml:"user_id"`
	Front            string    `db:"front" yaml:"front"`
	Back             string    `db:"back" yaml:"back"`
	Hint             string    `db:"hint" yaml:"hint,omitempty"`
	Explanation      string    `db:"explanation" yaml:"explanation,omitempty"`
	FrontImageURL    string    `db:"front_image_url" yaml:"front_image_url,omitempty"`
	BackImageURL     string    `db:"back_image_url" yaml:"back_image_url,omitempty"`
	AudioURL         string    `db:"audio_url" yaml:"audio_url,omitempty"`
	Tags             *string   `db:"tags" yaml:"tags,omitempty"`
	SourceType       string    `db:"source_type" yaml:"source_type,omitempty"`
	SourceMaterialID *int64    `db:"source_material_id" yaml:"source_material_id,omitempty"`
	CreatedAt        time.Time `db:"created_at" yaml:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" yaml:"updated_at"`
}

// DeckRepository defines operations for managing decks.
type DeckRepository interface {
	FindByUser(ctx context.Context, userID int64) ([]Deck, error)
	FindByIDAndUser(ctx context.Context, deckID, userID int64) (*Deck, error)
	Create(ctx context.Context, deck *Deck) error
	Update(ctx context.Context, deck *Deck) error
	Delete(ctx context.Context, deckID, userID int64) error
}

// CardRepository defines operations for managing flashcards.
type CardRepository interface {
	FindByDeck(ctx context.Context, deckID int64) ([]Card, error)
	FindByIDAndUser(ctx context.Context, cardID, userID int64) (*Card, error)
	CountByDeck(ctx context.Context, deckID int64) (int64, error)
	Create(ctx context.Context, ext sqlx.ExtContext, card *Card) error
	Update(ctx context.Context, card *Card) error
	Delete(ctx context.Context, cardID, userID int64) error
}

// DBDeckRepository implements DeckRepository using MySQL.
type DBDeckRepository struct {
	db *sqlx.DB
}

// NewDBDeckRepository creates a new DBDeckRepository.
func NewDBDeckRepository(db *sqlx.DB) *DBDeckRepository {
	return &DBDeckRepository{db: db}
}

// FindByUser returns all decks owned by a user, newest first.
func (r *DBDeckRepository) FindByUser(ctx context.Context, userID int64) ([]Deck, error) {
	var decks []Deck
	if err := r.db.SelectContext(ctx, &decks,
		"SELECT * FROM decks WHERE user_id = ? ORDER BY created_at DESC", userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(decks) > %w", err)
	}
	return decks, nil
}

// FindByIDAndUser returns a deck by id, checking ownership.
func (r *DBDeckRepository) FindByIDAndUser(ctx context.Context, deckID, userID int64) (*Deck, error) {
	var d Deck
	err := r.db.GetContext(ctx, &d,
		"SELECT * FROM decks WHERE id = ? AND user_id = ?", deckID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(deck) > %w", err)
	}
	return &d, nil
}

// Create inserts a new deck.
func (r *DBDeckRepository) Create(ctx context.Context, deck *Deck) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO decks (user_id, name, description, color, icon, is_public)
		VALUES (?, ?, ?, ?, ?, ?)`,
		deck.UserID, deck.Name, deck.Description, deck.Color, deck.Icon, deck.IsPublic)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert deck) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	deck.ID = id
	return nil
}

// Update saves changes to an existing deck, checking ownership.
func (r *DBDeckRepository) Update(ctx context.Context, deck *Deck) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE decks SET name = ?, description = ?, color = ?, icon = ?, is_public = ?
		WHERE id = ? AND user_id = ?`,
		deck.Name, deck.Description, deck.Color, deck.Icon, deck.IsPublic,
		deck.ID, deck.UserID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update deck) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrDeckNotFound
	}
	return nil
}

// Delete removes a deck. Flashcards and their progress cascade via foreign keys.
func (r *DBDeckRepository) Delete(ctx context.Context, deckID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM decks WHERE id = ? AND user_id = ?", deckID, userID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete deck) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrDeckNotFound
	}
	return nil
}

// DBCardRepository implements CardRepository using MySQL.
type DBCardRepository struct {
	db *sqlx.DB
}

// NewDBCardRepository creates a new DBCardRepository.
func NewDBCardRepository(db *sqlx.DB) *DBCardRepository {
	return &DBCardRepository{db: db}
}

// FindByDeck returns all flashcards in a deck, newest first.
func (r *DBCardRepository) FindByDeck(ctx context.Context, deckID int64) ([]Card, error) {
	var cards []Card
	if err := r.db.SelectContext(ctx, &cards,
		"SELECT * FROM flashcards WHERE deck_id = ? ORDER BY created_at DESC", deckID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(flashcards) > %w", err)
	}
	return cards, nil
}

// FindByIDAndUser returns a flashcard by id, checking ownership.
func (r *DBCardRepository) FindByIDAndUser(ctx context.Context, cardID, userID int64) (*Card, error) {
	var c Card
	err := r.db.GetContext(ctx, &c,
		"SELECT * FROM flashcards WHERE id = ? AND user_id = ?", cardID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(flashcard) > %w", err)
	}
	return &c, nil
}

// CountByDeck returns the number of flashcards in a deck.
func (r *DBCardRepository) CountByDeck(ctx context.Context, deckID int64) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM flashcards WHERE deck_id = ?", deckID); err != nil {
		return 0, fmt.Errorf("db.GetContext(count flashcards) > %w", err)
	}
	return count, nil
}

// Create inserts a new flashcard. It accepts an ExtContext so the card and its
// learning-progress row can be created inside one transaction.
func (r *DBCardRepository) Create(ctx context.Context, ext sqlx.ExtContext, card *Card) error {
	result, err := ext.ExecContext(ctx,
		`INSERT INTO flashcards (deck_id, user_id, front, back, hint, explanation,
			front_image_url, back_image_url, audio_url, tags, source_type, source_material_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		card.DeckID, card.UserID, card.Front, card.Back, card.Hint, card.Explanation,
		card.FrontImageURL, card.BackImageURL, card.AudioURL, card.Tags,
		card.SourceType, card.SourceMaterialID)
	if err != nil {
		return fmt.Errorf("ext.ExecContext(insert flashcard) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	card.ID = id
	return nil
}

// Update saves changes to an existing flashcard, checking ownership.
func (r *DBCardRepository) Update(ctx context.Context, card *Card) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE flashcards SET front = ?, back = ?, hint = ?, explanation = ?,
			front_image_url = ?, back_image_url = ?, audio_url = ?, tags = ?
		WHERE id = ? AND user_id = ?`,
		card.Front, card.Back, card.Hint, card.Explanation,
		card.FrontImageURL, card.BackImageURL, card.AudioURL, card.Tags,
		card.ID, card.UserID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update flashcard) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes a flashcard. Progress and review logs cascade via foreign keys.
func (r *DBCardRepository) Delete(ctx context.Context, cardID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM flashcards WHERE id = ? AND user_id = ?", cardID, userID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete flashcard) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return ErrCardNotFound
	}
	return nil
}
