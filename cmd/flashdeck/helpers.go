package main

import (
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/hoangnd/flashdeck/internal/config"
	"github.com/hoangnd/flashdeck/internal/database"
	"github.com/hoangnd/flashdeck/internal/deck"
	"github.com/hoangnd/flashdeck/internal/progress"
	"github.com/hoangnd/flashdeck/internal/session"
)

// defaultUserID identifies the single local user of the CLI.
const defaultUserID int64 = 1

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// services wires the repositories and domain services over one database
// connection. Close must be called when a command finishes.
type services struct {
	db  *sqlx.DB
	cfg *config.Config

	decks      *deck.Service
	progresses *progress.Service
	sessions   *session.Service

	deckRepo     deck.DeckRepository
	cardRepo     deck.CardRepository
	progressRepo progress.Repository
}

func newServices() (*services, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}

	deckRepo := deck.NewDBDeckRepository(db)
	cardRepo := deck.NewDBCardRepository(db)
	progressRepo := progress.NewDBRepository(db)
	reviewLogRepo := progress.NewDBReviewLogRepository(db)
	sessionRepo := session.NewDBRepository(db)

	return &services{
		db:           db,
		cfg:          cfg,
		decks:        deck.NewService(db, deckRepo, cardRepo, progressRepo),
		progresses:   progress.NewService(db, progressRepo, reviewLogRepo),
		sessions:     session.NewService(db, sessionRepo),
		deckRepo:     deckRepo,
		cardRepo:     cardRepo,
		progressRepo: progressRepo,
	}, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func (s *services) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("db.Close() > %w", err)
	}
	return nil
}
