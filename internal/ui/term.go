package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers and today's day number: bold
	colorHeader = color.New(color.Bold)
	colorToday  = color.New(color.FgYellow, color.Bold, color.Underline)

	// Weekend columns and rest day markers: red like a paper calendar
	colorRest = color.New(color.FgRed)

	// Workday markers
	colorWork = color.New(color.FgGreen)

	// Lunar labels
	colorLunar = color.New(color.FgMagenta)

	// Schedule labels
	colorSchedule = color.New(color.FgCyan)

	// Muted: days outside the displayed month and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}

func formatRest(s string) string {
	return colorRest.Sprint(s)
}

func formatWork(s string) string {
	return colorWork.Sprint(s)
}

func formatLunar(s string) string {
	return colorLunar.Sprint(s)
}

func formatSchedule(s string) string {
	return colorSchedule.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
