package display

import "github.com/fatih/color"

// Style holds the colors the renderer applies. Probes never see it.
type Style struct {
	Logo   *color.Color
	Label  *color.Color
	User   *color.Color
	At     *color.Color
	Host   *color.Color
	Accent *color.Color

	// Dots are the colors of the palette row printed under the facts
	Dots []*color.Color
}

// NewStyle returns the default palette. With enabled false every color is
// disabled and the output contains no escape sequences.
func NewStyle(enabled bool) Style {
	s := Style{
		Logo:   color.New(color.FgCyan),
		Label:  color.New(color.FgBlue),
		User:   color.New(color.FgYellow),
		At:     color.New(color.FgRed),
		Host:   color.New(color.FgGreen),
		Accent: color.New(color.FgCyan),
		Dots: []*color.Color{
			color.New(color.FgBlue),
			color.New(color.FgCyan),
			color.New(color.FgGreen),
			color.New(color.FgYellow),
			color.New(color.FgRed),
			color.New(color.FgMagenta),
		},
	}
	for _, c := range s.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s Style) all() []*color.Color {
	return append([]*color.Color{s.Logo, s.Label, s.User, s.At, s.Host, s.Accent}, s.Dots...)
}
