package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/match"
)

func newSimulateCmd() *cobra.Command {
	var games int
	var show bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let the computer play both sides",
		Long: `Play matches where the computer controls both fleets and report the results.

Every simulated match is saved to the match history. Combine with --seed to
replay the same matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("games must be at least 1, got %d", games)
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			result := SimulationResult{
				BoardSize: app.MatchController.BoardSize(),
			}
			totalMoves := 0

			for i := 0; i < games; i++ {
				opts := match.Options{Notifier: notifier(cmd)}
				if show {
					opts.Notifier = notifier(cmd, app.NewAnnouncer(out))
					opts.Renderer = app.NewRenderer(out)
				}

				session, err := app.MatchController.NewMatch(ctx, opts)
				if err != nil {
					return err
				}
				summary, err := app.MatchController.Run(ctx, session)
				if err != nil {
					return err
				}

				result.Games++
				totalMoves += summary.Moves
				if summary.Winner == model.SideUser {
					result.UserWins++
				} else {
					result.ComputerWins++
				}
				if result.ShortestGame == 0 || summary.Moves < result.ShortestGame {
					result.ShortestGame = summary.Moves
				}
				if summary.Moves > result.LongestGame {
					result.LongestGame = summary.Moves
				}
			}
			result.AverageMoves = float64(totalMoves) / float64(result.Games)

			NewOutput(cfg.Output, out, cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of matches to play")
	cmd.Flags().BoolVar(&show, "show", false, "Print boards and moves while playing")

	return cmd
}
