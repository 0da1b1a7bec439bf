package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"docintake/internal/intake"
)

// ActionMsg carries an intake action from a view or keybind to the AppModel,
// which dispatches it to the store.
type ActionMsg struct {
	Action intake.Action
}

// dispatch returns a command that emits an ActionMsg for a.
func dispatch(a intake.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg{Action: a} }
}

// ShowBrowseMsg opens the file browser for the selected applicant (b, SPC f b).
type ShowBrowseMsg struct{}

// DeleteSelectedApplicantMsg deletes the applicant whose tab is selected (D, SPC a d).
type DeleteSelectedApplicantMsg struct{}

// MoveCursorMsg moves the document cursor by Delta rows (j/k).
type MoveCursorMsg struct {
	Delta int
}

// MarkUploadedAtCursorMsg is the row's Upload action for the document under the cursor (u).
type MarkUploadedAtCursorMsg struct{}

// DeleteDocumentAtCursorMsg is the row's cancel action for the document under the cursor (x).
type DeleteDocumentAtCursorMsg struct{}

// CopyDocumentNameMsg copies the name of the document under the cursor (y).
type CopyDocumentNameMsg struct{}
