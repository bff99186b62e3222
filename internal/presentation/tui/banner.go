package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Arbor ASCII art banner to w using the given color profile.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Greens fading into bark brown
	lines := []struct {
		text, color string
	}{
		{"                  _                ", "#4ade80"},
		{"   __ _ _ __ ___ | |__   ___  _ __ ", "#22c55e"},
		{"  / _` | '__/ _ \\| '_ \\ / _ \\| '__|", "#16a34a"},
		{" | (_| | | | (_) | |_) | (_) | |   ", "#a16207"},
		{"  \\__,_|_|  \\___/|_.__/ \\___/|_|   ", "#854d0e"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
