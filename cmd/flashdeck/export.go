package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoangnd/flashdeck/internal/deckfile"
	"github.com/hoangnd/flashdeck/internal/pdf"
)

func newExportCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export <deck-id>",
		Short: "Export a deck to a YAML or PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "pdf" {
				return fmt.Errorf("unsupported format %q: use yaml or pdf", format)
			}

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

			path := output
			if path == "" {
				name := strings.ReplaceAll(strings.ToLower(d.Name), " ", "-")
				path = filepath.Join(svc.cfg.Outputs.ExportDirectory, name+"."+format)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("os.MkdirAll() > %w", err)
			}

			if format == "pdf" {
				markdown := deckfile.BuildMarkdown(d, cards)
				written, err := pdf.WriteMarkdown(markdown, path)
				if err != nil {
					return err
				}
				fmt.Printf("Exported %d cards to %s\n", len(cards), written)
				return nil
			}

			file, err := deckfile.Build(d, cards)
			if err != nil {
				return err
			}
			out, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("os.Create() > %w", err)
			}
			defer func() { _ = out.Close() }()

			if err := deckfile.Write(out, file); err != nil {
				return err
			}
			fmt.Printf("Exported %d cards to %s\n", len(cards), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Export format: yaml or pdf")
	cmd.Flags().StringVar(&output, "output", "", "Output file path (defaults to the export directory)")
	return cmd
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a deck from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open() > %w", err)
			}
			defer func() { _ = in.Close() }()

			file, err := deckfile.Read(in)
			if err != nil {
				return err
			}

			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			importer := deckfile.NewImporter(svc.decks, os.Stdout)
			result, err := importer.Import(cmd.Context(), defaultUserID, file)
			if err != nil {
				return err
			}

			fmt.Printf("Imported deck %d: %d cards added, %d skipped.\n",
				result.DeckID, result.CardsNew, result.CardsSkipped)
			return nil
		},
	}
}
