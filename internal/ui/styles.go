package ui

import (
	"github.com/charmbracelet/lipgloss"

	"docintake/internal/intake"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "39"  // Blue - buttons, selected tab border
	ColorHighlight = "205" // Magenta - cursor, modal border
	ColorDanger    = "196" // Red - delete actions
	ColorMuted     = "241" // Gray - hints, disabled buttons
	ColorText      = "252" // Light gray - normal text
	ColorNeutral   = "245" // Neutral tab border
	ColorSuccess   = "114" // Green - Success chip
	ColorPending   = "214" // Orange - Pending Upload chip
	ColorInk       = "235" // Dark text on chips
)

// dashedBorder draws the drop zone outline.
var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // Header title
	Bar          lipgloss.Style // Header and footer bars
	Button       lipgloss.Style // Enabled button
	ButtonOff    lipgloss.Style // Disabled button (first/last applicant)
	TabActive    lipgloss.Style // Selected applicant tab
	TabInactive  lipgloss.Style // Other applicant tabs
	TabDelete    lipgloss.Style // Delete glyph inside a tab
	DropZone     lipgloss.Style // Dashed drag-and-drop area
	Link         lipgloss.Style // "Browse Files"
	Section      lipgloss.Style // "Uploaded Documents"
	Row          lipgloss.Style // Document row
	RowCursor    lipgloss.Style // Document row under the cursor
	ChipSuccess  lipgloss.Style
	ChipPending  lipgloss.Style
	ActionUpload lipgloss.Style
	ActionDelete lipgloss.Style
	Empty        lipgloss.Style // Empty state text
	Hint         lipgloss.Style // Help/hint text
	Box          lipgloss.Style // Modal box
	BoxTitle     lipgloss.Style // Modal title
	Label        lipgloss.Style // Modal field label
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Bar: lipgloss.NewStyle().
		Padding(0, 2),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	ButtonOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Background(lipgloss.Color("237")).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Padding(0, 1),
	TabInactive: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorNeutral)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	TabDelete: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	DropZone: lipgloss.NewStyle().
		Border(dashedBorder).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 4).
		Align(lipgloss.Center),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	Section: lipgloss.NewStyle().
		Bold(true).
		MarginTop(1),
	Row: lipgloss.NewStyle().
		PaddingLeft(2),
	RowCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	ChipSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInk)).
		Background(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	ChipPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInk)).
		Background(lipgloss.Color(ColorPending)).
		Padding(0, 1),
	ActionUpload: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	ActionDelete: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Label: lipgloss.NewStyle(),
}

// StatusChip renders a document status with its color.
func StatusChip(s intake.Status) string {
	if s == intake.StatusSuccess {
		return Styles.ChipSuccess.Render(s.String())
	}
	return Styles.ChipPending.Render(s.String())
}
