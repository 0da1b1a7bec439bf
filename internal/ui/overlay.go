package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"docintake/internal/intake"
)

// Overlay is a modal view drawn over the screen. While any overlay is open
// it receives all key input.
type Overlay struct {
	View View
}

// actionSource is implemented by overlays that produce intake actions.
// The AppModel drains it right after each Update, so the actions are
// applied before the next message is read.
type actionSource interface {
	takeActions() []intake.Action
}

// closer is implemented by overlays that can ask to be dismissed.
type closer interface {
	closed() bool
}

// OverlayStack manages open overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Contains reports whether any overlay matches match.
func (s *OverlayStack) Contains(match func(View) bool) bool {
	for _, o := range s.Stack {
		if match(o.View) {
			return true
		}
	}
	return false
}

// Remove drops every overlay matching match, keeping the order of the rest.
func (s *OverlayStack) Remove(match func(View) bool) {
	kept := s.Stack[:0]
	for _, o := range s.Stack {
		if !match(o.View) {
			kept = append(kept, o)
		}
	}
	s.Stack = kept
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
