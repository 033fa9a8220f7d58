package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoangnd/flashdeck/internal/deck"
)

func newCardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage flashcards",
	}
	cmd.AddCommand(
		newCardAddCommand(),
		newCardListCommand(),
		newCardUpdateCommand(),
		newCardDeleteCommand(),
	)
	return cmd
}

func newCardListCommand() *cobra.Command {
	var deckID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the flashcards in a deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			cards, err := svc.decks.Cards(cmd.Context(), deckID, defaultUserID)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Println("No cards in this deck yet.")
				return nil
			}
			for _, card := range cards {
				fmt.Printf("%4d  %s — %s\n", card.ID, card.Front, card.Back)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&deckID, "deck", 0, "Deck ID to list cards from")
	_ = cmd.MarkFlagRequired("deck")
	return cmd
}

func newCardAddCommand() *cobra.Command {
	var deckID int64
	var hint, explanation string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <front> <back>",
		Short: "Add a flashcard to a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			card := &deck.Card{
				DeckID:      deckID,
				UserID:      defaultUserID,
				Front:       args[0],
				Back:        args[1],
				Hint:        hint,
				Explanation: explanation,
			}
			if len(tags) > 0 {
				encoded, err := json.Marshal(tags)
				if err != nil {
					return fmt.Errorf("json.Marshal(tags) > %w", err)
				}
				tagsJSON := string(encoded)
				card.Tags = &tagsJSON
			}

			if err := svc.decks.CreateCard(cmd.Context(), card); err != nil {
				return err
			}
			fmt.Printf("Added card %d to deck %d.\n", card.ID, deckID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&deckID, "deck", 0, "Deck ID to add the card to")
	cmd.Flags().StringVar(&hint, "hint", "", "Optional hint shown before the answer")
	cmd.Flags().StringVar(&explanation, "explanation", "", "Optional explanation shown with the answer")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags for the card")
	_ = cmd.MarkFlagRequired("deck")
	return cmd
}

func newCardUpdateCommand() *cobra.Command {
	var front, back, hint, explanation string

	cmd := &cobra.Command{
		Use:   "update <card-id>",
		Short: "Edit a flashcard without touching its review schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			card, err := svc.decks.Card(cmd.Context(), cardID, defaultUserID)
			if err != nil {
				return err
			}
			if front != "" {
				card.Front = front
			}
			if back != "" {
				card.Back = back
			}
			if cmd.Flags().Changed("hint") {
				card.Hint = hint
			}
			if cmd.Flags().Changed("explanation") {
				card.Explanation = explanation
			}

			if err := svc.decks.UpdateCard(cmd.Context(), card); err != nil {
				return err
			}
			fmt.Printf("Updated card %d.\n", card.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&front, "front", "", "New front text")
	cmd.Flags().StringVar(&back, "back", "", "New back text")
	cmd.Flags().StringVar(&hint, "hint", "", "New hint")
	cmd.Flags().StringVar(&explanation, "explanation", "", "New explanation")
	return cmd
}

func newCardDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a flashcard and its learning state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			if err := svc.decks.DeleteCard(cmd.Context(), cardID, defaultUserID); err != nil {
				return err
			}
			fmt.Printf("Deleted card %d.\n", cardID)
			return nil
		},
	}
}
