package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained piece of the screen with Elm-style
// Init/Update/View. The add-applicant modal and the file browser are Views.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
