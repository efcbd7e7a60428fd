package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/render"
)

// Reader reads the user's targets from a line-oriented stream.
// It satisfies player.InputSource.
type Reader struct {
	in       io.Reader
	out      io.Writer
	palette  render.Palette
	messages render.Messages

	start sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

// NewReader creates a Reader that prompts on out and reads from in
func NewReader(in io.Reader, out io.Writer, palette render.Palette, messages render.Messages) *Reader {
	return &Reader{
		in:       in,
		out:      out,
		palette:  palette,
		messages: messages,
		lines:    make(chan line),
	}
}

// NextTarget prompts until a line holds exactly two unsigned integers.
// The 1-indexed input is returned as a 0-indexed coordinate; range checks are
// left to the board. Cancelling ctx abandons a pending read.
func (r *Reader) NextTarget(ctx context.Context) (model.Coordinate, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.Coordinate{}, err
		}
		r.start.Do(func() { go r.scan() })

		fmt.Fprint(r.out, r.messages.Prompt)

		var next line
		select {
		case <-ctx.Done():
			return model.Coordinate{}, ctx.Err()
		case l, ok := <-r.lines:
			if !ok {
				return model.Coordinate{}, model.ErrInputClosed
			}
			next = l
		}
		if next.err != nil {
			return model.Coordinate{}, fmt.Errorf("%w: %v", model.ErrInputClosed, next.err)
		}

		target, problem := parseTarget(next.text)
		switch problem {
		case problemNone:
			return target, nil
		case problemFieldCount:
			fmt.Fprintln(r.out, r.palette.Stylize(r.messages.NeedTwo, render.StyleFailure))
		case problemNotNumeric:
			fmt.Fprintln(r.out, r.palette.Stylize(r.messages.NeedNumbers, render.StyleFailure))
		}
	}
}

// scan feeds lines to NextTarget until the input ends
func (r *Reader) scan() {
	defer close(r.lines)
	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		r.lines <- line{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		r.lines <- line{err: err}
	}
}

type parseProblem int

const (
	problemNone parseProblem = iota
	problemFieldCount
	problemNotNumeric
)

func parseTarget(line string) (model.Coordinate, parseProblem) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return model.Coordinate{}, problemFieldCount
	}

	values := make([]int, 2)
	for i, f := range fields {
		if !isDigits(f) {
			return model.Coordinate{}, problemNotNumeric
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return model.Coordinate{}, problemNotNumeric
		}
		values[i] = n
	}
	return model.Coordinate{Row: values[0] - 1, Col: values[1] - 1}, problemNone
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
