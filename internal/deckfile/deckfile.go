// Package deckfile reads and writes deck files: YAML for round-tripping decks
// between machines and markdown for printable study sheets.
package deckfile

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hoangnd/flashdeck/internal/deck"
)

// File is the on-disk representation of one deck with its cards. Scheduling
// state is deliberately not part of the format: an imported deck always
// starts fresh.
type File struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Color       string      `yaml:"color,omitempty"`
	Icon        string      `yaml:"icon,omitempty"`
	Cards       []CardEntry `yaml:"cards"`
}

// CardEntry is one flashcard in a deck file.
type CardEntry struct {
	Front       string   `yaml:"front"`
	Back        string   `yaml:"back"`
	Hint        string   `yaml:"hint,omitempty"`
	Explanation string   `yaml:"explanation,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Build converts a deck and its cards into the file representation.
func Build(d *deck.Deck, cards []deck.Card) (File, error) {
	file := File{
		Name:        d.Name,
		Description: d.Description,
		Color:       d.Color,
		Icon:        d.Icon,
		Cards:       make([]CardEntry, 0, len(cards)),
	}
	for _, card := range cards {
		entry := CardEntry{
			Front:       card.Front,
			Back:        card.Back,
			Hint:        card.Hint,
			Explanation: card.Explanation,
		}
		if card.Tags != nil && *card.Tags != "" {
			if err := json.Unmarshal([]byte(*card.Tags), &entry.Tags); err != nil {
				return File{}, fmt.Errorf("json.Unmarshal(tags of card %d) > %w", card.ID, err)
			}
		}
		file.Cards = append(file.Cards, entry)
	}
	return file, nil
}

// Write encodes the file as YAML.
func Write(w io.Writer, file File) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("yaml.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("yaml.Encoder.Close() > %w", err)
	}
	return nil
}

// Read decodes a YAML deck file and validates that it can be imported.
func Read(r io.Reader) (File, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return File{}, fmt.Errorf("yaml.Decode() > %w", err)
	}
	if file.Name == "" {
		return File{}, fmt.Errorf("deck file has no name")
	}
	for i, card := range file.Cards {
		if card.Front == "" || card.Back == "" {
			return File{}, fmt.Errorf("card %d has an empty front or back", i+1)
		}
	}
	return file, nil
}

// BuildMarkdown renders a deck as a printable study sheet: one section per
// card, answer separated from the prompt.
func BuildMarkdown(d *deck.Deck, cards []deck.Card) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Description)
	}
	fmt.Fprintf(&b, "%d cards\n\n", len(cards))

	for i, card := range cards {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, card.Front)
		if card.Hint != "" {
			fmt.Fprintf(&b, "*Hint: %s*\n\n", card.Hint)
		}
		fmt.Fprintf(&b, "**Answer:** %s\n\n", card.Back)
		if card.Explanation != "" {
			fmt.Fprintf(&b, "%s\n\n", card.Explanation)
		}
	}
	return []byte(b.String())
}
