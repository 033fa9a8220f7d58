package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoangnd/flashdeck/internal/deck"
)

func newDeckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage flashcard decks",
	}
	cmd.AddCommand(
		newDeckCreateCommand(),
		newDeckListCommand(),
		newDeckShowCommand(),
		newDeckUpdateCommand(),
		newDeckDeleteCommand(),
	)
	return cmd
}

func newDeckCreateCommand() *cobra.Command {
	var description, color, icon string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			d := &deck.Deck{
				UserID:      defaultUserID,
				Name:        args[0],
				Description: description,
				Color:       color,
				Icon:        icon,
			}
			if err := svc.decks.CreateDeck(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Printf("Created deck %d: %s\n", d.ID, d.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "Deck description")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon")
	return cmd
}

func newDeckListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			decks, err := svc.decks.Decks(cmd.Context(), defaultUserID)
			if err != nil {
				return err
			}
			if len(decks) == 0 {
				fmt.Println("No decks yet. Create one with: flashdeck deck create <name>")
				return nil
			}
			for _, d := range decks {
				count, err := svc.decks.CardCount(cmd.Context(), d.ID)
				if err != nil {
					return err
				}
				fmt.Printf("%4d  %-30s %4d cards\n", d.ID, d.Name, count)
			}
			return nil
		},
	}
}

func newDeckShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <deck-id>",
		Short: "Show a deck and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			d, err := svc.decks.Deck(cmd.Context(), deckID, defaultUserID)
			if err != nil {
				return err
			}
			cards, err := svc.decks.Cards(cmd.Context(), deckID, defaultUserID)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%d cards)\n", d.Name, len(cards))
			if d.Description != "" {
				fmt.Println(d.Description)
			}
			for _, card := range cards {
				fmt.Printf("%4d  %s — %s\n", card.ID, card.Front, card.Back)
			}
			return nil
		},
	}
}

func newDeckUpdateCommand() *cobra.Command {
	var name, description, color, icon string

	cmd := &cobra.Command{
		Use:   "update <deck-id>",
		Short: "Update a deck's name or appearance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			d, err := svc.decks.Deck(cmd.Context(), deckID, defaultUserID)
			if err != nil {
				return err
			}
			if name != "" {
				d.Name = name
			}
			if cmd.Flags().Changed("description") {
				d.Description = description
			}
			if cmd.Flags().Changed("color") {
				d.Color = color
			}
			if cmd.Flags().Changed("icon") {
				d.Icon = icon
			}

			if err := svc.decks.UpdateDeck(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Printf("Updated deck %d.\n", d.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New deck name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&color, "color", "", "New display color")
	cmd.Flags().StringVar(&icon, "icon", "", "New display icon")
	return cmd
}

func newDeckDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deck-id>",
		Short: "Delete a deck and all of its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseID(args[0])
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			if err := svc.decks.DeleteDeck(cmd.Context(), deckID, defaultUserID); err != nil {
				return err
			}
			fmt.Printf("Deleted deck %d.\n", deckID)
			return nil
		},
	}
}
