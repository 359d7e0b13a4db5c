package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, file paths, question IDs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" and "merged" file statuses.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" file status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome and skipped files.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, paths, question IDs).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StylePrompt styles question prompt text.
	StylePrompt = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (defaults, separators, hints).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File statuses reported by the tree writer.
const (
	StatusCreated     = "created"
	StatusSkipped     = "skipped"
	StatusOverwritten = "overwritten"
	StatusMerged      = "merged"
	StatusFailed      = "failed"
)

// StatusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusOverwritten, StatusMerged:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width for the path column before the
// status suffix, so status words align consistently.
const minPathColumnWidth = 40

// FormatFileLine renders a file path with a right-aligned, color-coded
// status suffix.
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message for stdout output.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✗")
	return cross + " " + msg
}

// FormatQuestion renders a prompt line for a question with its default.
func FormatQuestion(prompt, def string) string {
	line := StylePrompt.Render(prompt)
	if def != "" {
		line += " " + StyleDim.Render(fmt.Sprintf("[%s]", def))
	}
	return line + " "
}
