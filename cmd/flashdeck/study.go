package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hoangnd/flashdeck/internal/bootstrap"
	"github.com/hoangnd/flashdeck/internal/cli"
)

func newStudyCommand() *cobra.Command {
	var deckID int64

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Review due cards and learn new ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices()
			if err != nil {
				return err
			}

			app := bootstrap.New()
			app.AddShutdownHook(func(ctx context.Context) error {
				return svc.Close()
			})

			studyCLI := cli.NewStudyCLI(
				defaultUserID,
				svc.progresses,
				svc.sessions,
				svc.cardRepo,
				svc.cfg.Study.DueCardLimit,
				svc.cfg.Study.NewCardLimit,
			)

			var scope *int64
			if deckID > 0 {
				scope = &deckID
			}
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				return studyCLI.Run(ctx, scope)
			})
		},
	}
	cmd.Flags().Int64Var(&deckID, "deck", 0, "Limit the session to one deck")
	return cmd
}
