// Package output provides styled terminal rendering helpers for pathjoin.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette shared by every command.
var (
	ColorPrimary = lipgloss.Color("#64b5f6")
	ColorSuccess = lipgloss.Color("#66bb6a")
	ColorWarning = lipgloss.Color("#fff59d")
	ColorMuted   = lipgloss.Color("#888888")
)

// Styles used by the renderers. SetNoColor swaps them between the palette
// and plain text.
var (
	// StyleHeader renders section titles and table headers.
	StyleHeader lipgloss.Style

	// StyleSuccess renders joined paths.
	StyleSuccess lipgloss.Style

	// StyleWarning marks segments that lost boundary slashes.
	StyleWarning lipgloss.Style

	// StyleMuted renders rules and secondary text.
	StyleMuted lipgloss.Style

	// StyleBold renders segment indexes.
	StyleBold lipgloss.Style
)

func init() {
	defaultStyles()
}

func defaultStyles() {
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
}

func plainStyles() {
	plain := lipgloss.NewStyle()
	StyleHeader = plain
	StyleSuccess = plain
	StyleWarning = plain
	StyleMuted = plain
	StyleBold = plain
}

// SetNoColor switches every package style to plain text when disabled is
// true and back to the default palette when it is false.
func SetNoColor(disabled bool) {
	if disabled {
		plainStyles()
		return
	}
	defaultStyles()
}

// ColorEnabled reports whether styled output should be written to w.
// It needs the config preference, no NO_COLOR in the environment, and w must
// be a terminal. Writers that are not files never get color.
func ColorEnabled(preferred bool, w io.Writer) bool {
	if !preferred {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Section returns a styled section header with a horizontal rule of width cells.
func Section(title string, width int) string {
	if width <= 0 {
		width = 66
	}
	return "\n " + StyleHeader.Render(title) + "\n " + StyleMuted.Render(repeat("─", width))
}
