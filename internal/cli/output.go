package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/seabattle/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// JSON returns true if output is machine-readable
func (o *Output) JSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.JSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.JSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.JSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.MatchSummary:
		o.printSummary(v)
	case []*model.MatchSummary:
		o.printHistory(v)
	case SimulationResult:
		o.printSimulation(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SimulationResult tallies a batch of computer-vs-computer matches
type SimulationResult struct {
	Games        int     `json:"games"`
	BoardSize    int     `json:"board_size"`
	UserWins     int     `json:"user_wins"`
	ComputerWins int     `json:"computer_wins"`
	AverageMoves float64 `json:"average_moves"`
	ShortestGame int     `json:"shortest_game"`
	LongestGame  int     `json:"longest_game"`
}

func (o *Output) printSummary(s *model.MatchSummary) {
	fmt.Fprintf(o.out, "Match: %s\n", s.ID)
	fmt.Fprintf(o.out, "Winner: %s\n", s.Winner)
	fmt.Fprintf(o.out, "Board Size: %d\n", s.BoardSize)
	fmt.Fprintf(o.out, "Moves: %d\n", s.Moves)
	fmt.Fprintf(o.out, "User: %d shots, %d hits\n", s.UserShots, s.UserHits)
	fmt.Fprintf(o.out, "Computer: %d shots, %d hits\n", s.ComputerShots, s.ComputerHits)
	fmt.Fprintf(o.out, "Duration: %s\n", s.CompletedAt.Sub(s.StartedAt).Round(time.Second))
}

func (o *Output) printHistory(summaries []*model.MatchSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(o.out, "No matches played yet")
		return
	}

	fmt.Fprintf(o.out, "Matches (%d):\n", len(summaries))
	for _, s := range summaries {
		fmt.Fprintf(o.out, "  - %s  %s  %dx%d  winner: %s  moves: %d  hits: %d/%d\n",
			s.CompletedAt.Format("2006-01-02 15:04"),
			s.ID,
			s.BoardSize, s.BoardSize,
			s.Winner,
			s.Moves,
			s.UserHits, s.ComputerHits,
		)
	}
}

func (o *Output) printSimulation(r SimulationResult) {
	fmt.Fprintf(o.out, "Games: %d (%dx%d)\n", r.Games, r.BoardSize, r.BoardSize)
	fmt.Fprintf(o.out, "User wins: %d\n", r.UserWins)
	fmt.Fprintf(o.out, "Computer wins: %d\n", r.ComputerWins)
	fmt.Fprintf(o.out, "Average moves: %.1f\n", r.AverageMoves)
	fmt.Fprintf(o.out, "Shortest game: %d moves\n", r.ShortestGame)
	fmt.Fprintf(o.out, "Longest game: %d moves\n", r.LongestGame)
}
