package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/iiskills/mpa/internal/effects"
)

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, color.CyanString(logo))
	if title != "" {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, "─────────────────────")
	}
}

func printNotices(w io.Writer, notices []effects.Notice) {
	for _, n := range notices {
		if n.Error != "" {
			fmt.Fprintf(w, "%s %s (%s)\n", color.RedString("✗"), n.Text, n.Error)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), n.Text)
		if n.Link != "" {
			fmt.Fprintf(w, "  %s\n", n.Link)
		}
		if n.File != "" {
			fmt.Fprintf(w, "  QR: %s\n", n.File)
		}
	}
}
