package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docintake/internal/intake"
)

type stubView struct {
	name string
	seen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return nil }

func (v *stubView) Update(msg tea.Msg) (View, tea.Cmd) {
	v.seen = append(v.seen, msg)
	return v, nil
}

func (v *stubView) View() string { return v.name }

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Pop()
	assert.False(t, ok)

	a, b := &stubView{name: "a"}, &stubView{name: "b"}
	s.Push(Overlay{View: a})
	s.Push(Overlay{View: b})
	require.Equal(t, 2, s.Len())

	cmd, ok := s.UpdateTop(keyMsg("x"))
	assert.True(t, ok)
	assert.Nil(t, cmd)
	assert.Len(t, b.seen, 1)
	assert.Empty(t, a.seen)

	isA := func(v View) bool { return v == View(a) }
	assert.True(t, s.Contains(isA))
	s.Remove(isA)
	assert.False(t, s.Contains(isA))
	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", top.View.View())

	s.Pop()
	_, ok = s.UpdateTop(keyMsg("x"))
	assert.False(t, ok)
}

func TestAddApplicantModal_QueuesActions(t *testing.T) {
	m := NewAddApplicantModal("Al")
	assert.Equal(t, "Al", m.Value())

	m.Update(keyMsg("i"))
	m.Update(keyMsg("x"))
	assert.Equal(t, "Alix", m.Value())
	assert.Equal(t, []intake.Action{
		intake.SetDraft{Value: "Ali"},
		intake.SetDraft{Value: "Alix"},
	}, m.takeActions())
	assert.Empty(t, m.takeActions(), "actions are drained once")

	for key, want := range map[string]intake.Action{
		"enter":  intake.SubmitDraft{},
		"esc":    intake.CancelDraft{},
		"ctrl+w": intake.CloseModal{},
	} {
		_, cmd := m.Update(keyMsg(key))
		assert.Nil(t, cmd, key)
		assert.Equal(t, []intake.Action{want}, m.takeActions(), key)
	}
	assert.Equal(t, "Alix", m.Value(), "control keys do not edit the field")
}
