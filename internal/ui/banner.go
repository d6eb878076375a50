package ui

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

const bannerFont = "standard"

// Banner renders title as ASCII art. Without colors the art is returned
// as-is; with colors it is tinted cyan.
func Banner(title string) string {
	art := figure.NewFigure(title, bannerFont, true).String()
	art = strings.TrimRight(art, "\n") + "\n"
	if colorDisabled() {
		return art
	}
	return Info.color.Sprint(art)
}

// Rule returns a horizontal line of the given width.
func Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return Muted.color.Sprint(strings.Repeat("─", width))
}
