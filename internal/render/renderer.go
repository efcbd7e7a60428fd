package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/seabattle/internal/model"
)

const (
	panelGap       = 10
	titleIndent    = 6
	separatorWidth = 64
	bannerIndent   = 22
)

// Renderer writes boards and banners to a terminal
type Renderer struct {
	out      io.Writer
	palette  Palette
	messages Messages
}

// NewRenderer creates a Renderer writing to out
func NewRenderer(out io.Writer, palette Palette, messages Messages) *Renderer {
	return &Renderer{
		out:      out,
		palette:  palette,
		messages: messages,
	}
}

// Greeting prints the title banner and the input format
func (r *Renderer) Greeting() {
	fmt.Fprintln(r.out, r.palette.Stylize(strings.Repeat("-", separatorWidth), StyleBanner))
	fmt.Fprintln(r.out, r.palette.Stylize(strings.Repeat(" ", bannerIndent)+"SEA BATTLE", StyleBanner))
	fmt.Fprintln(r.out, r.palette.Stylize(strings.Repeat("-", separatorWidth), StyleBanner))
	fmt.Fprintln(r.out, r.palette.Stylize(r.messages.InputFormat, StyleBanner))
	fmt.Fprintln(r.out, r.palette.Stylize(strings.Repeat("-", separatorWidth), StyleBanner))
}

// Render prints both boards side by side followed by a separator
func (r *Renderer) Render(user, computer *model.Board) {
	left := r.palette.BoardLines(user)
	right := r.palette.BoardLines(computer)

	// Each title starts six columns into its panel; a panel is 4*size+3 runes wide
	title := strings.Repeat(" ", titleIndent) + r.messages.UserFleet
	pad := 4*user.Size() + 3 + panelGap + titleIndent - len([]rune(title))
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintln(r.out, title+strings.Repeat(" ", pad)+r.messages.ComputerFleet)

	for i := range left {
		line := left[i]
		if i < len(right) {
			line += strings.Repeat(" ", panelGap) + right[i]
		}
		fmt.Fprintln(r.out, line)
	}
	r.Separator()
}

// Separator prints a horizontal rule
func (r *Renderer) Separator() {
	fmt.Fprintln(r.out, strings.Repeat("-", separatorWidth))
}
