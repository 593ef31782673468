package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// WriteBanner outputs the CrabCamera ASCII banner with version to w.
// It uses a warm gradient (amber to crab-red) when the terminal supports it.
func WriteBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`                 _                                         `, "#fbbf24"},
		{`  ___ _ __ __ _ | |__   ___ __ _ _ __ ___   ___ _ __ __ _ `, "#f59e0b"},
		{` / __| '__/ _' || '_ \ / __/ _' | '_ ' _ \ / _ \ '__/ _' |`, "#f97316"},
		{`| (__| | | (_| || |_) | (_| (_| | | | | | |  __/ | | (_| |`, "#ef4444"},
		{` \___|_|  \__,_||_.__/ \___\__,_|_| |_| |_|\___|_|  \__,_|`, "#dc2626"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  🦀📷 v"+strings.TrimSpace(version)).Foreground(p.Color("#9ca3af")))
	fmt.Fprintln(w)
}
