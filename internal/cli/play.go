package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/seabattle/internal/middleware"
	"github.com/mcoot/seabattle/internal/services/match"
	"github.com/mcoot/seabattle/internal/services/player"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a match against the computer",
		Long: `Play an interactive match against the computer.

Enter each shot as two numbers, the row then the column, both starting at 1.
Your fleet is on the left; the computer's fleet is on the right and stays
hidden until hit. Results are saved to the match history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			renderer := app.NewRenderer(out)
			renderer.Greeting()

			session, err := app.MatchController.NewMatch(ctx, match.Options{
				UserInput: app.NewConsole(cmd.InOrStdin(), out),
				Notifier:  notifier(cmd, app.NewAnnouncer(out)),
				Renderer:  renderer,
			})
			if err != nil {
				return err
			}

			summary, err := app.MatchController.Run(ctx, session)
			if err != nil {
				return err
			}

			output := NewOutput(cfg.Output, out, cmd.ErrOrStderr())
			if output.JSON() {
				output.Print(summary)
			}
			return nil
		},
	}
}

// notifier combines the given presenters with event logging and, when
// --trace is set, the event stream
func notifier(cmd *cobra.Command, presenters ...player.Notifier) player.Notifier {
	if cfg.Trace {
		presenters = append(presenters, newTracer(cmd.ErrOrStderr(), cfg.Output == "json"))
	}
	return middleware.Logging(logger)(player.Broadcast(presenters...))
}
