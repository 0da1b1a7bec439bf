package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}

// RenderKeybindHelp produces the transient help box shown after SPC.
// With a partial sequence (e.g. "SPC a") it shows the next-level keys.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	h := newHelpModel()
	return boxStyle.Render(Styles.Hint.Render(prefix) + " " + h.ShortHelpView(bindings))
}

// screenKeyMap is the always-visible key help in the footer.
type screenKeyMap struct {
	mode AppMode
	docs int
}

var (
	keyAdd    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add applicant"))
	keyTabs   = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "back/next"))
	keyBrowse = key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "browse"))
	keyCursor = key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "document"))
	keyUpload = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload"))
	keyDelete = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove"))
	keyDelApp = key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete applicant"))
	keyDelTab = key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"), key.WithHelp("alt+1…9", "delete tab"))
	keyLeader = key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "more"))
	keyQuit   = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)

var _ help.KeyMap = screenKeyMap{}

// ShortHelp implements help.KeyMap.
func (k screenKeyMap) ShortHelp() []key.Binding {
	if k.mode == ModeNoApplicants {
		return []key.Binding{keyAdd, keyLeader, keyQuit}
	}
	out := []key.Binding{keyAdd, keyTabs, keyBrowse}
	if k.docs > 0 {
		out = append(out, keyCursor, keyUpload, keyDelete)
	}
	return append(out, keyDelApp, keyDelTab, keyLeader, keyQuit)
}

// FullHelp implements help.KeyMap.
func (k screenKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
