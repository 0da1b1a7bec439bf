package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docintake/internal/intake"
	"docintake/internal/ui/textutil"
)

const maxTabName = 24

// View implements tea.Model. The frame is a pure function of the store
// state, the document cursor and the open overlays.
func (a *appModelAdapter) View() string {
	w, h := a.size()
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	st := a.Store.State()
	mode := modeFor(st)

	var b strings.Builder
	b.WriteString(renderHeader(w) + "\n")
	b.WriteString(renderTabs(st, w) + "\n")
	b.WriteString(renderDetail(st, a.DocCursor, w) + "\n")
	b.WriteString(renderFooter(st, w) + "\n")

	helpModel := newHelpModel()
	helpModel.Width = w
	b.WriteString(Styles.Bar.Render(helpModel.View(screenKeyMap{mode: mode, docs: len(st.CurrentDocuments())})))
	if leader := RenderKeybindHelp(a.KeyHandler, mode); leader != "" {
		b.WriteString("\n" + leader)
	}
	return b.String()
}

// spread places left and right at the edges of a bar of the given width.
func spread(left, right string, width int) string {
	inner := width - 4 // Styles.Bar padding
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return Styles.Bar.Render(left + strings.Repeat(" ", gap) + right)
}

func renderHeader(width int) string {
	return spread(Styles.Title.Render("Document Upload"), Styles.Button.Render("+ Add Applicant"), width)
}

// renderTabs draws one tab per applicant, scrolled so the selected tab is
// visible.
func renderTabs(st intake.State, width int) string {
	if st.Len() == 0 {
		return Styles.Bar.Render(Styles.Empty.Render("No applicants yet. Press a to add one."))
	}
	tabs := make([]string, st.Len())
	widths := make([]int, st.Len())
	for i, app := range st.Applicants {
		label := textutil.Truncate(app.Name, maxTabName) + " " + Styles.TabDelete.Render("✕")
		style := Styles.TabInactive
		if i == st.Selected {
			style = Styles.TabActive
		}
		tabs[i] = style.Render(label)
		widths[i] = lipgloss.Width(tabs[i]) + 1 // gap between tabs
	}

	start, end := visibleRange(widths, st.Selected, width-8)
	row := make([]string, 0, end-start+2)
	if start > 0 {
		row = append(row, Styles.Hint.Render("‹ "))
	}
	for i := start; i < end; i++ {
		row = append(row, tabs[i], " ")
	}
	if end < len(tabs) {
		row = append(row, Styles.Hint.Render(" ›"))
	}
	return Styles.Bar.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, row...))
}

// visibleRange returns the half-open range [start, end) of items that fit
// in maxWidth and include selected. It keeps as many items left of the
// selection as possible.
func visibleRange(widths []int, selected, maxWidth int) (int, int) {
	if len(widths) == 0 {
		return 0, 0
	}
	selected = min(max(selected, 0), len(widths)-1)
	start, used := selected, widths[selected]
	for start > 0 && used+widths[start-1] <= maxWidth {
		start--
		used += widths[start]
	}
	end := selected + 1
	for end < len(widths) && used+widths[end] <= maxWidth {
		used += widths[end]
		end++
	}
	return start, end
}

// renderDetail draws the selected applicant's drop zone and documents.
func renderDetail(st intake.State, cursor, width int) string {
	cur, ok := st.Current()
	if !ok {
		return Styles.Bar.Render("")
	}
	docs := st.DocumentsFor(cur.ID)
	zoneWidth := max(width-8, 30)

	if len(docs) == 0 {
		zone := Styles.DropZone.Width(zoneWidth).Render(
			"Drag and drop documents here\nor\n" + Styles.Link.Render("Browse Files") + Styles.Hint.Render(" (b)"),
		)
		msg := lipgloss.PlaceHorizontal(zoneWidth+2, lipgloss.Center, "No documents available")
		return Styles.Bar.Render(msg + "\n" + zone)
	}

	var b strings.Builder
	b.WriteString(Styles.DropZone.Width(zoneWidth).Render(
		"Drag and drop more documents here\nor\n" + Styles.Link.Render("Browse More Files") + Styles.Hint.Render(" (b)"),
	))
	b.WriteString("\n" + Styles.Section.Render("Uploaded Documents") + "\n")
	for i, d := range docs {
		b.WriteString(renderDocumentRow(d, i == cursor, width-4) + "\n")
	}
	return Styles.Bar.Render(strings.TrimRight(b.String(), "\n"))
}

func renderDocumentRow(d intake.Document, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = Styles.RowCursor.Render("› ")
	}
	actions := StatusChip(d.Status)
	if d.Status == intake.StatusPendingUpload {
		actions += " " + Styles.ActionUpload.Render("↑ Upload")
	}
	actions += " " + Styles.ActionDelete.Render("✕ cancel")

	nameWidth := width - lipgloss.Width(marker) - lipgloss.Width(actions) - 4
	name := "▤ " + textutil.Truncate(d.Name, max(nameWidth-2, 8))
	if selected {
		name = Styles.RowCursor.Render(name)
	}
	gap := max(width-lipgloss.Width(marker)-lipgloss.Width(name)-lipgloss.Width(actions), 1)
	return marker + name + strings.Repeat(" ", gap) + actions
}

func renderFooter(st intake.State, width int) string {
	back := Styles.ButtonOff.Render("← Back")
	if st.CanGoBack() {
		back = Styles.Button.Render("← Back")
	}
	next := Styles.ButtonOff.Render("Next →")
	if st.CanGoNext() {
		next = Styles.Button.Render("Next →")
	}
	return spread(back, next, width)
}
