package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the startup banner for the decision server.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient.
	lines := []struct {
		text  string
		color string
	}{
		{"  _                                       ", "#2dd4bf"},
		{" | |___  ___ __  _ __ ___   ___ ___  ___ ___ ", "#22d3ee"},
		{" | __\\ \\/ / '_ \\| '__/ _ \\ / __/ _ \\/ __/ __|", "#38bdf8"},
		{" | |_ >  <| |_) | | | (_) | (_|  __/\\__ \\__ \\", "#60a5fa"},
		{"  \\__/_/\\_\\ .__/|_|  \\___/ \\___\\___||___/___/", "#818cf8"},
		{"          |_|                                ", "#a78bfa"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
