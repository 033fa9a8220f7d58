package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoangnd/flashdeck/internal/generation"
)

func newGenerateCommand() *cobra.Command {
	var deckID int64
	var count int

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate flashcards for a topic with the card generation API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			if svc.cfg.Generation.BaseURL == "" {
				return fmt.Errorf("generation.base_url is not configured")
			}

			client := generation.NewHTTPClient(
				svc.cfg.Generation.BaseURL,
				svc.cfg.Generation.APIKey,
				svc.cfg.Generation.RetryAttempts,
			)
			defer func() { _ = client.Close() }()

			requestRepo := generation.NewDBRepository(svc.db)
			generator := generation.NewService(svc.db, client, requestRepo, svc.deckRepo, svc.cardRepo, svc.progressRepo)

			cards, err := generator.GenerateCards(cmd.Context(), defaultUserID, deckID, args[0], count)
			if err != nil {
				return err
			}

			fmt.Printf("Generated %d cards into deck %d:\n", len(cards), deckID)
			for _, card := range cards {
				fmt.Printf("%4d  %s — %s\n", card.ID, card.Front, card.Back)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&deckID, "deck", 0, "Deck ID to add generated cards to")
	cmd.Flags().IntVar(&count, "count", 10, "Number of cards to generate")
	_ = cmd.MarkFlagRequired("deck")
	return cmd
}
