package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"docintake/internal/intake"
)

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		widths     []int
		selected   int
		maxWidth   int
		start, end int
	}{
		{"empty", nil, 0, 80, 0, 0},
		{"all fit", []int{10, 10, 10}, 1, 80, 0, 3},
		{"scroll to last", []int{10, 10, 10, 10}, 3, 25, 2, 4},
		{"first selected", []int{10, 10, 10, 10}, 0, 25, 0, 2},
		{"selected wider than bar", []int{10, 50, 10}, 1, 20, 1, 2},
		{"selection clamped", []int{10, 10}, 7, 80, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.widths, tt.selected, tt.maxWidth)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func stateWith(t *testing.T, names ...string) intake.State {
	t.Helper()
	s := intake.NewState()
	for _, n := range names {
		var err error
		s, _ = s.SetDraft(n)
		s, err = s.Submit()
		if err != nil {
			t.Fatalf("submit %q: %v", n, err)
		}
	}
	return s
}

func TestRenderTabs_ScrollsToSelection(t *testing.T) {
	s := stateWith(t, "Applicant One", "Applicant Two", "Applicant Three", "Applicant Four", "Applicant Five")

	out := renderTabs(s, 60)
	assert.Contains(t, out, "Applicant Five")
	assert.Contains(t, out, "‹", "earlier tabs are scrolled off")
	assert.NotContains(t, out, "Applicant One")

	s, _ = s.Select(0)
	out = renderTabs(s, 60)
	assert.Contains(t, out, "Applicant One")
	assert.Contains(t, out, "›")
	assert.NotContains(t, out, "Applicant Five")
}

func TestRenderTabs_TruncatesLongNames(t *testing.T) {
	s := stateWith(t, strings.Repeat("x", 60))
	out := renderTabs(s, 120)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 30))
}

func TestRenderFooter_DisablesAtEnds(t *testing.T) {
	s := stateWith(t, "A", "B")
	assert.True(t, s.CanGoBack())
	assert.False(t, s.CanGoNext())

	out := renderFooter(s, 80)
	assert.Contains(t, out, "← Back")
	assert.Contains(t, out, "Next →")
	assert.Equal(t, 80, lipgloss.Width(out))

	s, _ = s.Previous()
	assert.False(t, s.CanGoBack())
	assert.True(t, s.CanGoNext())
}

func TestRenderDocumentRow(t *testing.T) {
	d := intake.Document{ID: intake.NewDocumentID(), Name: "passport.pdf", Status: intake.StatusPendingUpload}

	row := renderDocumentRow(d, true, 80)
	assert.Contains(t, row, "passport.pdf")
	assert.Contains(t, row, "Pending Upload")
	assert.Contains(t, row, "↑ Upload")
	assert.Contains(t, row, "cancel")
	assert.Contains(t, row, "›")
	assert.LessOrEqual(t, lipgloss.Width(row), 80)

	d.Status = intake.StatusSuccess
	row = renderDocumentRow(d, false, 80)
	assert.Contains(t, row, "Success")
	assert.NotContains(t, row, "Upload")
	assert.NotContains(t, row, "›")
}

func TestRenderDetail_NoApplicant(t *testing.T) {
	out := renderDetail(intake.NewState(), 0, 80)
	assert.NotContains(t, out, "Drag and drop")
}
