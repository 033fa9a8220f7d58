package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hoangnd/flashdeck/internal/progress"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
	}
	cmd.AddCommand(
		newStatsDeckCommand(),
		newStatsReviewsCommand(),
		newStatsSessionsCommand(),
	)
	return cmd
}

func newStatsDeckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deck <deck-id>",
		Short: "Show maturity, accuracy and workload for one deck",
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
			summary, err := svc.progresses.DeckStats(cmd.Context(), defaultUserID, deckID)
			if err != nil {
				return err
			}

			printDeckStats(d.Name, summary)
			return nil
		},
	}
}

func printDeckStats(deckName string, summary *progress.DeckStatsSummary) {
	bold := color.New(color.Bold)
	_, _ = bold.Printf("%s\n", deckName)
	fmt.Printf("  Cards:     %d total (%d new, %d learning, %d young, %d mature)\n",
		summary.TotalCards, summary.NewCards, summary.LearningCards, summary.YoungCards, summary.MatureCards)
	fmt.Printf("  Due now:   %d (about %d minutes)\n", summary.DueCards, summary.EstimatedMinutesToday)
	fmt.Printf("  Reviews:   %d total, %.0f%% correct\n", summary.TotalReviews, summary.OverallAccuracy*100)
	fmt.Printf("  Avg time:  %ds per card\n", summary.AverageTimeSeconds)

	if summary.StudyPriority == progress.PriorityHigh {
		_, _ = color.New(color.FgRed).Printf("  Priority:  %s — study this deck today\n", summary.StudyPriority)
	} else {
		fmt.Printf("  Priority:  %s\n", summary.StudyPriority)
	}
}

func newStatsReviewsCommand() *cobra.Command {
	var days, limit int

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Show recent review history",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			since := time.Now().AddDate(0, 0, -days)
			logs, err := svc.progresses.RecentReviews(cmd.Context(), defaultUserID, since, limit)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Printf("No reviews in the last %d days.\n", days)
				return nil
			}

			for _, entry := range logs {
				fmt.Printf("%s  card %-6d quality %d  interval %dd\n",
					entry.ReviewDate.Format("2006-01-02 15:04"), entry.FlashcardID, entry.Quality, entry.IntervalDays)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "How many days back to look")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of reviews to show")
	return cmd
}

func newStatsSessionsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Show recent study sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			sessions, err := svc.sessions.RecentSessions(cmd.Context(), defaultUserID, limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No study sessions yet.")
				return nil
			}

			for _, s := range sessions {
				state := "open"
				if s.EndTime != nil {
					state = "done"
				}
				fmt.Printf("%s  %-9s %4s  %d cards, %.0f%% correct\n",
					s.StartTime.Format("2006-01-02 15:04"), s.SessionType, state, s.CardsStudied, s.Accuracy()*100)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of sessions to show")
	return cmd
}
