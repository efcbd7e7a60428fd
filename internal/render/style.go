package render

import "github.com/fatih/color"

// Style is the semantic role of a piece of text
type Style int

const (
	StylePlain Style = iota
	StyleMuted
	StyleShip
	StyleMiss
	StyleHit
	StyleDestroyed
	StyleSuccess
	StyleFailure
	StyleBanner
)

var styleAttributes = map[Style][]color.Attribute{
	StyleMuted:     {color.FgWhite},
	StyleShip:      {color.FgBlue},
	StyleMiss:      {color.FgWhite},
	StyleHit:       {color.FgYellow},
	StyleDestroyed: {color.FgRed},
	StyleSuccess:   {color.FgGreen},
	StyleFailure:   {color.FgRed},
	StyleBanner:    {color.FgYellow},
}

// Palette applies styles to text. The zero value produces plain text.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette that colours output when enabled is true
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Enabled returns true if the palette emits colour codes
func (p Palette) Enabled() bool {
	return p.enabled
}

// Stylize wraps text in the escape codes for style
func (p Palette) Stylize(text string, style Style) string {
	attrs, ok := styleAttributes[style]
	if !p.enabled || !ok {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// TerminalSupportsColor reports whether stdout looks like a colour terminal
func TerminalSupportsColor() bool {
	return !color.NoColor
}
