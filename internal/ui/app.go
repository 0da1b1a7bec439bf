package ui

import (
	"context"
	"errors"
	"strconv"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"docintake/internal/intake"
	"docintake/internal/ui/dropzone"
)

// Options configures an AppModel.
type Options struct {
	Store      *intake.Store
	Logger     *zap.Logger
	StartDir   string // file browser root; "" = working directory
	ShowHidden bool
	// CopyText writes to the system clipboard; defaults to clipboard.WriteAll.
	CopyText func(string) error
}

// AppModel is the root model of the intake screen.
type AppModel struct {
	Store      *intake.Store
	Logger     *zap.Logger
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	// DocCursor indexes the selected applicant's document list.
	DocCursor int

	startDir   string
	showHidden bool
	copyText   func(string) error
	width      int
	height     int
	ctx        context.Context
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model with the default keybinds.
func NewAppModel(ctx context.Context, opts Options) *AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = intake.NewStore()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	startDir := opts.StartDir
	if startDir == "" {
		startDir = "."
	}
	return &AppModel{
		Store:      store,
		Logger:     logger,
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		startDir:   startDir,
		showHidden: opts.ShowHidden,
		copyText:   copyText,
		ctx:        ctx,
	}
}

// DefaultKeybinds returns the registry for the intake screen.
func DefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	applicantOnly := []AppMode{ModeApplicant}
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }

	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	// Applicants
	reg.Bind("a", dispatch(intake.ToggleModal{}))
	reg.BindWithDesc("SPC a a", dispatch(intake.ToggleModal{}), "Add applicant")
	reg.Bind("D", msg(DeleteSelectedApplicantMsg{}))
	reg.BindWithDescForMode("SPC a d", msg(DeleteSelectedApplicantMsg{}), "Delete applicant", applicantOnly)
	for _, k := range []string{"right", "l", "tab"} {
		reg.Bind(k, dispatch(intake.NextApplicant{}))
	}
	for _, k := range []string{"left", "h", "shift+tab"} {
		reg.Bind(k, dispatch(intake.PreviousApplicant{}))
	}
	reg.BindWithDescForMode("SPC a n", dispatch(intake.NextApplicant{}), "Next applicant", applicantOnly)
	reg.BindWithDescForMode("SPC a p", dispatch(intake.PreviousApplicant{}), "Previous applicant", applicantOnly)
	for i := 1; i <= 9; i++ {
		reg.Bind(strconv.Itoa(i), dispatch(intake.SelectApplicant{Index: i - 1}))
		// The tab's ✕: deletes that tab whatever is selected.
		reg.Bind("alt+"+strconv.Itoa(i), dispatch(intake.DeleteApplicant{Index: i - 1}))
	}

	// Documents
	reg.Bind("j", msg(MoveCursorMsg{Delta: 1}))
	reg.Bind("down", msg(MoveCursorMsg{Delta: 1}))
	reg.Bind("k", msg(MoveCursorMsg{Delta: -1}))
	reg.Bind("up", msg(MoveCursorMsg{Delta: -1}))
	reg.Bind("u", msg(MarkUploadedAtCursorMsg{}))
	reg.Bind("x", msg(DeleteDocumentAtCursorMsg{}))
	reg.Bind("y", msg(CopyDocumentNameMsg{}))
	reg.BindWithDescForMode("SPC d u", msg(MarkUploadedAtCursorMsg{}), "Mark uploaded", applicantOnly)
	reg.BindWithDescForMode("SPC d x", msg(DeleteDocumentAtCursorMsg{}), "Remove document", applicantOnly)
	reg.BindWithDescForMode("SPC d y", msg(CopyDocumentNameMsg{}), "Copy name", applicantOnly)

	// Files
	reg.Bind("b", msg(ShowBrowseMsg{}))
	reg.BindWithDescForMode("SPC f b", msg(ShowBrowseMsg{}), "Browse files", applicantOnly)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode returns the current AppMode.
func (m *AppModel) Mode() AppMode {
	return modeFor(m.Store.State())
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.updateOverlay(msg)
	case ActionMsg:
		return a, a.apply(msg.Action)
	case ShowBrowseMsg:
		return a, a.openBrowse()
	case DeleteSelectedApplicantMsg:
		st := a.Store.State()
		if _, ok := st.Current(); !ok {
			return a, nil
		}
		return a, a.apply(intake.DeleteApplicant{Index: st.Selected})
	case MoveCursorMsg:
		a.DocCursor += msg.Delta
		a.clampCursor()
		return a, nil
	case MarkUploadedAtCursorMsg:
		if d, ok := a.docAtCursor(); ok && d.Status == intake.StatusPendingUpload {
			return a, a.apply(intake.MarkUploaded{ID: d.ID})
		}
		return a, nil
	case DeleteDocumentAtCursorMsg:
		if d, ok := a.docAtCursor(); ok {
			return a, a.apply(intake.DeleteDocument{ID: d.ID})
		}
		return a, nil
	case CopyDocumentNameMsg:
		if d, ok := a.docAtCursor(); ok {
			if err := a.copyText(d.Name); err != nil {
				a.Logger.Warn("copy to clipboard failed", zap.String("document", d.Name), zap.Error(err))
			}
		}
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.Overlays.Len() > 0 {
			return a, a.updateOverlay(msg)
		}
		if msg.Paste {
			return a, a.drop(string(msg.Runes))
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a.runKeybind(cmd)
		}
		return a, nil
	}

	// Everything else (cursor blink, directory reads) belongs to the top overlay.
	return a, a.updateOverlay(msg)
}

// runKeybind handles a bound command inside the current Update. Keybind
// commands only build a message; left to the runtime, that message could
// arrive after the keys typed next (e.g. text meant for the modal).
func (a *appModelAdapter) runKeybind(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if cmd == nil {
		return a, nil
	}
	switch msg := cmd().(type) {
	case nil:
		return a, nil
	case tea.QuitMsg:
		return a, tea.Quit
	default:
		return a.Update(msg)
	}
}

// updateOverlay routes msg to the top overlay, then applies the actions it
// queued and drops it if it asked to close.
func (m *AppModel) updateOverlay(msg tea.Msg) tea.Cmd {
	top, ok := m.Overlays.Peek()
	if !ok {
		return nil
	}
	cmd, _ := m.Overlays.UpdateTop(msg)
	cmds := []tea.Cmd{cmd}
	if src, ok := top.View.(actionSource); ok {
		for _, act := range src.takeActions() {
			cmds = append(cmds, m.apply(act))
		}
	}
	if c, ok := top.View.(closer); ok && c.closed() {
		m.Overlays.Remove(func(v View) bool { return v == top.View })
	}
	return tea.Batch(cmds...)
}

// apply dispatches an action and brings overlays and the cursor in line
// with the new state.
func (m *AppModel) apply(act intake.Action) tea.Cmd {
	before, _ := m.Store.State().Current()
	if err := m.Store.Dispatch(m.ctx, act); err != nil {
		// Rejections are never shown; a blank name just closes the modal.
		if !errors.Is(err, intake.ErrBlankName) {
			m.Logger.Debug("ignored action", zap.String("action", act.Name()), zap.Error(err))
		}
	}
	if after, _ := m.Store.State().Current(); after.ID != before.ID {
		m.DocCursor = 0
	}
	m.clampCursor()
	return m.syncModal()
}

// syncModal opens or closes the add-applicant modal to match State.ModalOpen.
func (m *AppModel) syncModal() tea.Cmd {
	isModal := func(v View) bool {
		_, ok := v.(*AddApplicantModal)
		return ok
	}
	st := m.Store.State()
	open := m.Overlays.Contains(isModal)
	switch {
	case st.ModalOpen && !open:
		modal := NewAddApplicantModal(st.Draft)
		m.Overlays.Push(Overlay{View: modal})
		return modal.Init()
	case !st.ModalOpen && open:
		m.Overlays.Remove(isModal)
	}
	return nil
}

func (m *AppModel) openBrowse() tea.Cmd {
	cur, ok := m.Store.State().Current()
	if !ok {
		return nil
	}
	w, h := m.size()
	b := NewBrowseOverlay(m.startDir, m.showHidden, cur.Name, w, h)
	m.Overlays.Push(Overlay{View: b})
	return b.Init()
}

// drop handles a bracketed paste as a drag-and-drop of files.
func (m *AppModel) drop(payload string) tea.Cmd {
	files := dropzone.Parse(payload)
	if len(files) == 0 {
		return nil
	}
	m.Logger.Debug("files dropped", zap.Strings("files", files))
	return m.apply(intake.UploadDocuments{Files: files, Source: "drop"})
}

func (m *AppModel) docAtCursor() (intake.Document, bool) {
	docs := m.Store.State().CurrentDocuments()
	if m.DocCursor < 0 || m.DocCursor >= len(docs) {
		return intake.Document{}, false
	}
	return docs[m.DocCursor], true
}

func (m *AppModel) clampCursor() {
	n := len(m.Store.State().CurrentDocuments())
	if m.DocCursor >= n {
		m.DocCursor = n - 1
	}
	if m.DocCursor < 0 {
		m.DocCursor = 0
	}
}

// size returns the terminal size, with a fallback before the first
// WindowSizeMsg (and in tests).
func (m *AppModel) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}
