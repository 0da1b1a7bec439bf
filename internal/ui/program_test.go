package ui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docintake/internal/intake"
)

// runProgram drives m through a real tea.Program, sending keys back to back
// the way a fast typist or a paste would, and waits for it to exit.
func runProgram(t *testing.T, m *AppModel, keys ...tea.Msg) {
	t.Helper()
	p := tea.NewProgram(m.AsTeaModel(),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()
	for _, k := range keys {
		p.Send(k)
	}
	p.Send(tea.QuitMsg{})

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		p.Kill()
		t.Fatal("program did not exit")
	}
}

func TestProgram_TypedNameThenEnter(t *testing.T) {
	for i := 0; i < 50; i++ {
		store := intake.NewStore()
		require.NoError(t, store.Dispatch(context.Background(), intake.SetDraft{Value: "Alice"}))
		require.NoError(t, store.Dispatch(context.Background(), intake.SubmitDraft{}))
		m := NewAppModel(context.Background(), Options{Store: store, StartDir: t.TempDir()})

		// "D" and "b" are global keys; they must reach the modal opened by "a".
		runProgram(t, m,
			keyMsg("a"), keyMsg("D"), keyMsg("a"), keyMsg("v"), keyMsg("i"), keyMsg("d"),
			keyMsg("enter"),
			keyMsg("a"), keyMsg("B"), keyMsg("o"), keyMsg("b"), keyMsg("enter"),
		)

		st := store.State()
		if !assert.Equal(t, []string{"Alice", "David", "Bob"}, names(st.Applicants), "run %d", i) {
			return
		}
		assert.Empty(t, st.Draft, "run %d", i)
		assert.False(t, st.ModalOpen, "run %d", i)
		assert.Equal(t, 0, m.Overlays.Len(), "run %d", i)
	}
}
