package ui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"docintake/internal/intake"
)

// BrowseOverlay wraps bubbles/filepicker as the "Browse Files" dialog.
// Each selected file queues an UploadDocuments action and the dialog stays
// open so several files can be added; Esc closes it.
type BrowseOverlay struct {
	picker    filepicker.Model
	applicant string
	added     []string
	pending   []intake.Action
	done      bool
}

// Ensure BrowseOverlay implements View.
var _ View = (*BrowseOverlay)(nil)

// NewBrowseOverlay creates a file browser rooted at dir for the named
// applicant. width and height size the listing.
func NewBrowseOverlay(dir string, showHidden bool, applicant string, width, height int) *BrowseOverlay {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.ShowHidden = showHidden
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = true
	// AutoHeight sizes the listing from a window size message.
	fp, _ = fp.Update(tea.WindowSizeMsg{Width: width, Height: max(height-6, 8)})
	return &BrowseOverlay{picker: fp, applicant: applicant}
}

// Added returns the base names picked so far in this dialog.
func (b *BrowseOverlay) Added() []string {
	return b.added
}

// Init implements View. It starts reading the directory.
func (b *BrowseOverlay) Init() tea.Cmd {
	return b.picker.Init()
}

// Update implements View.
func (b *BrowseOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		b.done = true
		return b, nil
	}

	var cmd tea.Cmd
	b.picker, cmd = b.picker.Update(msg)
	if ok, path := b.picker.DidSelectFile(msg); ok {
		name := filepath.Base(path)
		b.added = append(b.added, name)
		b.pending = append(b.pending, intake.UploadDocuments{Files: []string{name}, Source: "browse"})
	}
	return b, cmd
}

// takeActions implements actionSource.
func (b *BrowseOverlay) takeActions() []intake.Action {
	out := b.pending
	b.pending = nil
	return out
}

// closed implements closer.
func (b *BrowseOverlay) closed() bool {
	return b.done
}

// View implements View.
func (b *BrowseOverlay) View() string {
	title := "Browse Files"
	if b.applicant != "" {
		title = fmt.Sprintf("Browse Files for %s", b.applicant)
	}
	content := Styles.BoxTitle.Render(title) + "\n"
	content += Styles.Hint.Render(b.picker.CurrentDirectory) + "\n\n"
	content += b.picker.View() + "\n"
	if n := len(b.added); n > 0 {
		content += "\n" + Styles.Hint.Render(fmt.Sprintf("Added %d file(s), last: %s", n, b.added[n-1]))
	}
	content += "\n" + Styles.Hint.Render("Enter: add file  ←/h: up a directory  Esc: done")
	return Styles.Box.Render(content)
}
