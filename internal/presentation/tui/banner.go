package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  ____  ____  ____    _    ", "#818cf8"},
	{" |  _ \\|  _ \\|  _ \\  / \\   ", "#a78bfa"},
	{" | |_) | |_) | | | |/ _ \\  ", "#c084fc"},
	{" |  __/|  __/| |_| / ___ \\ ", "#e879f9"},
	{" |_|   |_|   |____/_/   \\_\\", "#f472b6"},
}

// PrintBanner outputs the ppda ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w, out.String(" probabilistic pushdown automata v"+version).Faint())
	fmt.Fprintln(w)
}
