// Package display renders sysinfo.Facts next to an ASCII logo, or serializes
// them for machine consumption.
package display

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"nanofetch/sysinfo"
)

// DefaultGap is the number of spaces between logo and info.
const DefaultGap = 4

// labelWidth is the column the values start at, in cells.
const labelWidth = 10

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Options controls Render.
type Options struct {
	// Gap is the number of spaces between logo and info
	Gap int

	// Style colors the output
	Style Style
}

// Render writes the logo and the facts side by side.
//
// Parameters:
//   - w: Destination, usually os.Stdout
//   - logo: One string per line of ASCII art
//   - facts: The facts to show
//   - opts: Spacing and colors
//
// The logo is top-aligned and padded to its widest line so the info column
// starts at the same cell on every line.
func Render(w io.Writer, logo []string, facts sysinfo.Facts, opts Options) error {
	st := opts.Style
	infoLines := InfoLines(facts, st)

	logoWidth := 0
	for _, line := range logo {
		if lw := getVisibleWidth(line); lw > logoWidth {
			logoWidth = lw
		}
	}

	maxLines := len(logo)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	gap := strings.Repeat(" ", max(opts.Gap, 0))
	var b strings.Builder
	for i := 0; i < maxLines; i++ {
		logoLine := strings.Repeat(" ", logoWidth)
		if i < len(logo) {
			logoLine = st.Logo.Sprint(runewidth.FillRight(logo[i], logoWidth))
		}

		infoLine := ""
		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		b.WriteString(strings.TrimRight(logoLine+gap+infoLine, " "))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// InfoLines returns the right-hand column: a user@host header, one line per
// fact and a palette row.
func InfoLines(facts sysinfo.Facts, st Style) []string {
	return []string{
		header(facts.Identity, st),
		field(st, "System", facts.PrettyName),
		field(st, "Kernel", facts.Kernel),
		field(st, "Shell", facts.Shell),
		field(st, "Uptime", facts.Uptime),
		field(st, "Desktop", facts.Desktop),
		field(st, "Memory", usage(facts.Memory, st)),
		field(st, "Storage", usage(facts.Disk, st)),
		"",
		colorBar(st),
	}
}

func header(identity string, st Style) string {
	user, host, ok := cutLast(identity, "@")
	if !ok {
		return st.Host.Sprint(identity) + " ~"
	}
	return st.User.Sprint(user) + st.At.Sprint("@") + st.Host.Sprint(host) + " ~"
}

func field(st Style, label, value string) string {
	return st.Label.Sprint(runewidth.FillRight(label, labelWidth)) + value
}

// usage renders like sysinfo.Usage.String but highlights the percentage.
func usage(u sysinfo.Usage, st Style) string {
	if u == (sysinfo.Usage{}) {
		return u.String()
	}
	return fmt.Sprintf("%.2f GiB / %.2f GiB (%s)",
		u.UsedGiB, u.TotalGiB, st.Accent.Sprintf("%d%%", u.Percent))
}

// colorBar prints one dot per palette color, similar to other fetch utilities.
func colorBar(st Style) string {
	dots := make([]string, 0, len(st.Dots))
	for _, c := range st.Dots {
		dots = append(dots, c.Sprint("●"))
	}
	return strings.Join(dots, " ")
}

// getVisibleWidth calculates the visible width of a string excluding ANSI escape codes.
func getVisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
