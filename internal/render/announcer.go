package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/seabattle/internal/model"
)

// Announcer prints match events as localised messages.
// It satisfies player.Notifier.
type Announcer struct {
	out      io.Writer
	palette  Palette
	messages Messages
}

// NewAnnouncer creates an Announcer writing to out
func NewAnnouncer(out io.Writer, palette Palette, messages Messages) *Announcer {
	return &Announcer{
		out:      out,
		palette:  palette,
		messages: messages,
	}
}

// Notify prints the message for an event, if it has one
func (a *Announcer) Notify(event model.Event) {
	switch p := event.Payload.(type) {
	case model.TargetChosenPayload:
		a.targetChosen(event.Side, p)
	case model.ShotResolvedPayload:
		a.shotResolved(p)
	case model.ShotRejectedPayload:
		a.shotRejected(p)
	case model.MatchCompletePayload:
		a.matchComplete(p)
	}
}

func (a *Announcer) targetChosen(side model.Side, p model.TargetChosenPayload) {
	format := a.messages.ComputerMove
	if side == model.SideUser {
		format = a.messages.UserMove
	}
	fmt.Fprintf(a.out, format+"\n", p.Target.Row+1, p.Target.Col+1)
}

func (a *Announcer) shotResolved(p model.ShotResolvedPayload) {
	switch p.Result {
	case model.ShotHit:
		fmt.Fprintln(a.out, a.palette.Stylize(a.messages.Hit, StyleHit))
	case model.ShotDestroyed:
		fmt.Fprintln(a.out, a.palette.Stylize(a.messages.Destroyed, StyleDestroyed))
	default:
		fmt.Fprintln(a.out, a.messages.Miss)
	}
}

func (a *Announcer) shotRejected(p model.ShotRejectedPayload) {
	var msg string
	switch {
	case errors.Is(p.Err, model.ErrOutOfBounds):
		msg = a.messages.OutOfBounds
	case errors.Is(p.Err, model.ErrAlreadyTargeted):
		msg = a.messages.AlreadyTargeted
	default:
		msg = p.Err.Error()
	}
	fmt.Fprintln(a.out, a.palette.Stylize(msg, StyleFailure))
}

func (a *Announcer) matchComplete(p model.MatchCompletePayload) {
	msg, style := a.messages.UserWon, StyleSuccess
	if p.Winner == model.SideComputer {
		msg, style = a.messages.ComputerWon, StyleFailure
	}
	rule := strings.Repeat("-", separatorWidth)
	fmt.Fprintln(a.out, a.palette.Stylize(rule, style))
	fmt.Fprintln(a.out, a.palette.Stylize(strings.Repeat(" ", bannerIndent)+msg, style))
	fmt.Fprintln(a.out, a.palette.Stylize(rule, style))
}
