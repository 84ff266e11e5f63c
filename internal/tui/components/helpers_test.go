package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// collect runs cmd and flattens batches into the resulting messages.
// Commands that block (cursor blink, spinner ticks) are skipped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText[M interface{ Update(tea.Msg) (M, tea.Cmd) }](m M, text string) (M, []tea.Msg) {
	var msgs []tea.Msg
	for _, r := range text {
		var cmd tea.Cmd
		m, cmd = m.Update(runes(string(r)))
		msgs = append(msgs, collect(cmd)...)
	}
	return m, msgs
}
