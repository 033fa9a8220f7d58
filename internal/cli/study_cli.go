// Package cli contains the interactive terminal flows.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hoangnd/flashdeck/internal/deck"
	"github.com/hoangnd/flashdeck/internal/progress"
	"github.com/hoangnd/flashdeck/internal/scheduler"
	"github.com/hoangnd/flashdeck/internal/session"
)

//go:generate mockgen -source=study_cli.go -destination=../mocks/cli/mock_services.go -package=mock_cli

// errQuit ends the study loop when the user types q.
var errQuit = errors.New("quit")

// ProgressService is the study-queue and review surface the CLI needs.
type ProgressService interface {
	DueCards(ctx context.Context, userID int64, deckID *int64, limit int) ([]progress.CardProgress, error)
	NewCards(ctx context.Context, userID int64, deckID *int64, limit int) ([]progress.CardProgress, error)
	SubmitReview(ctx context.Context, userID, flashcardID int64, quality int, timeTakenSeconds *int) (*progress.CardProgress, error)
}

// SessionService is the session lifecycle surface the CLI needs.
type SessionService interface {
	StartSession(ctx context.Context, userID int64, deckID *int64, sessionType string) (*session.StudySession, error)
	RecordAnswer(ctx context.Context, userID, sessionID int64, correct bool, timeTakenSeconds int) (*session.StudySession, error)
	EndSession(ctx context.Context, userID, sessionID int64) (*session.StudySession, error)
}

// CardFinder loads card content for the cards in the study queue.
type CardFinder interface {
	FindByIDAndUser(ctx context.Context, cardID, userID int64) (*deck.Card, error)
}

// StudyCLI runs the interactive study loop: due cards first, then new cards,
// one quality rating per card.
type StudyCLI struct {
	userID       int64
	progresses   ProgressService
	sessions     SessionService
	cards        CardFinder
	dueCardLimit int
	newCardLimit int

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	now          func() time.Time
	bold         *color.Color
	green        *color.Color
	red          *color.Color
}

// NewStudyCLI creates a StudyCLI reading from stdin and writing to stdout.
func NewStudyCLI(
	userID int64,
	progresses ProgressService,
	sessions SessionService,
	cards CardFinder,
	dueCardLimit, newCardLimit int,
) *StudyCLI {
	return &StudyCLI{
		userID:       userID,
		progresses:   progresses,
		sessions:     sessions,
		cards:        cards,
		dueCardLimit: dueCardLimit,
		newCardLimit: newCardLimit,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		now:          time.Now,
		bold:         color.New(color.Bold),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// Run studies all due and new cards, optionally scoped to one deck.
func (cli *StudyCLI) Run(ctx context.Context, deckID *int64) error {
	dueCards, err := cli.progresses.DueCards(ctx, cli.userID, deckID, cli.dueCardLimit)
	if err != nil {
		return err
	}
	newCards, err := cli.progresses.NewCards(ctx, cli.userID, deckID, cli.newCardLimit)
	if err != nil {
		return err
	}

	recommendation := scheduler.StudyRecommendation(len(dueCards), len(newCards))
	if recommendation.TotalCards == 0 {
		fmt.Fprintln(cli.stdoutWriter, "Nothing to study. Come back later!")
		return nil
	}
	fmt.Fprintf(cli.stdoutWriter, "%d due and %d new cards, about %d minutes.\n",
		len(dueCards), len(newCards), recommendation.EstimatedMinutes)
	if recommendation.Warning != "" {
		fmt.Fprintln(cli.stdoutWriter, recommendation.Warning)
	}
	fmt.Fprintln(cli.stdoutWriter)

	studySession, err := cli.sessions.StartSession(ctx, cli.userID, deckID, sessionType(len(dueCards), len(newCards)))
	if err != nil {
		return err
	}

	queue := append(dueCards, newCards...)
	for _, p := range queue {
		if err := cli.studyCard(ctx, studySession.ID, p); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			_, _ = cli.sessions.EndSession(ctx, cli.userID, studySession.ID)
			return err
		}
	}

	finished, err := cli.sessions.EndSession(ctx, cli.userID, studySession.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.stdoutWriter, "\nSession done: %d cards, %d correct (%.0f%%).\n",
		finished.CardsStudied, finished.CardsCorrect, finished.Accuracy()*100)
	return nil
}

func (cli *StudyCLI) studyCard(ctx context.Context, sessionID int64, p progress.CardProgress) error {
	card, err := cli.cards.FindByIDAndUser(ctx, p.FlashcardID, cli.userID)
	if err != nil {
		return err
	}

	fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, card.Front)
	if card.Hint != "" {
		fmt.Fprintf(cli.stdoutWriter, "Hint: %s\n", card.Hint)
	}
	fmt.Fprint(cli.stdoutWriter, "Press Enter to reveal (q to quit): ")

	started := cli.now()
	input, err := cli.readLine()
	if err != nil {
		return err
	}
	if input == "q" {
		return errQuit
	}

	fmt.Fprintln(cli.stdoutWriter, card.Back)
	if card.Explanation != "" {
		fmt.Fprintln(cli.stdoutWriter, card.Explanation)
	}

	quality, err := cli.readQuality()
	if err != nil {
		return err
	}

	timeTaken := int(cli.now().Sub(started) / time.Second)
	updated, err := cli.progresses.SubmitReview(ctx, cli.userID, p.FlashcardID, quality, &timeTaken)
	if err != nil {
		return err
	}

	correct := quality >= 3
	if _, err := cli.sessions.RecordAnswer(ctx, cli.userID, sessionID, correct, timeTaken); err != nil {
		return err
	}

	if correct {
		_, _ = cli.green.Fprintf(cli.stdoutWriter, "Next review in %d days.\n", updated.IntervalDays)
	} else {
		_, _ = cli.red.Fprintln(cli.stdoutWriter, "You'll see this card again tomorrow.")
	}
	return nil
}

// readQuality prompts until the user enters a rating 0-5, or q to quit.
func (cli *StudyCLI) readQuality() (int, error) {
	for {
		fmt.Fprint(cli.stdoutWriter, "How well did you know it? (0-5, q to quit): ")
		input, err := cli.readLine()
		if err != nil {
			return 0, err
		}
		if input == "q" {
			return 0, errQuit
		}

		quality, err := parseQuality(input)
		if err != nil {
			fmt.Fprintln(cli.stdoutWriter, err.Error())
			continue
		}
		return quality, nil
	}
}

func (cli *StudyCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("stdinReader.ReadString() > %w", err)
	}
	if err != nil && line == "" {
		return "q", nil
	}
	return strings.TrimSpace(line), nil
}

// parseQuality converts user input into a quality rating.
func parseQuality(input string) (int, error) {
	quality, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("enter a number between %d and %d", scheduler.MinQuality, scheduler.MaxQuality)
	}
	if quality < scheduler.MinQuality || quality > scheduler.MaxQuality {
		return 0, fmt.Errorf("enter a number between %d and %d", scheduler.MinQuality, scheduler.MaxQuality)
	}
	return quality, nil
}

// sessionType picks the session type from the queue composition.
func sessionType(dueCount, newCount int) string {
	switch {
	case dueCount > 0 && newCount > 0:
		return session.TypeMixed
	case newCount > 0:
		return session.TypeLearnNew
	default:
		return session.TypeReview
	}
}
