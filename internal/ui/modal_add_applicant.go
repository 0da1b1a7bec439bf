package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docintake/internal/intake"
)

// AddApplicantModal is the "Add Applicant" form. The text field mirrors
// intake.State.Draft: every edit queues SetDraft, Enter submits and Esc
// cancels. Validation happens in the store.
type AddApplicantModal struct {
	input   textinput.Model
	pending []intake.Action
}

// Ensure AddApplicantModal implements View.
var _ View = (*AddApplicantModal)(nil)

// NewAddApplicantModal creates the modal pre-filled with draft.
func NewAddApplicantModal(draft string) *AddApplicantModal {
	ti := textinput.New()
	ti.Placeholder = "Applicant name"
	ti.Width = 40
	ti.SetValue(draft)
	ti.Focus()
	return &AddApplicantModal{input: ti}
}

// Value returns the current text of the name field.
func (m *AddApplicantModal) Value() string {
	return m.input.Value()
}

// Init implements View.
func (m *AddApplicantModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Actions are queued for takeActions, not sent as
// commands, so an edit can never be applied after the Enter that follows it.
func (m *AddApplicantModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			m.pending = append(m.pending, intake.SubmitDraft{})
			return m, nil
		case "esc":
			m.pending = append(m.pending, intake.CancelDraft{})
			return m, nil
		case "ctrl+w":
			m.pending = append(m.pending, intake.CloseModal{})
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.pending = append(m.pending, intake.SetDraft{Value: after})
	}
	return m, cmd
}

// takeActions implements actionSource.
func (m *AddApplicantModal) takeActions() []intake.Action {
	out := m.pending
	m.pending = nil
	return out
}

// View implements View.
func (m *AddApplicantModal) View() string {
	content := Styles.BoxTitle.Render("Add Applicant") + "\n\n"
	content += Styles.Label.Render("Name") + "\n"
	content += m.input.View() + "\n\n"
	content += Styles.Button.Render("Save") + "  " + Styles.ButtonOff.Render("Cancel") + "\n\n"
	content += Styles.Hint.Render("Enter: save  Esc: cancel  Ctrl+W: close")
	return Styles.Box.Render(content)
}
