package main

import (
	"context"
)

// Confirmation acknowledges a committed operation: a message, optional
// extra info, an optional payload of affected books. Any input returns
// the stored previous state.
type Confirmation struct {
	shell     *Shell
	message   string
	info      string
	books     []Book
	lastState State
}

// NewConfirmation provides an acknowledgement screen.
func NewConfirmation(shell *Shell, message, info string, books []Book, lastState State) *Confirmation {
	return &Confirmation{
		shell:     shell,
		message:   message,
		info:      info,
		books:     books,
		lastState: lastState,
	}
}

func (m *Confirmation) Render() {
	c := m.shell.console
	c.Option("%s", m.message)
	if m.info != "" {
		c.Option("%s\n", m.info)
	}
	for _, book := range m.books {
		c.Item("%s", book)
	}
	if len(m.books) > 0 {
		c.Prompt("\n")
	}
	c.Prompt("Press any key to exit to the last menu: ")
}

func (m *Confirmation) Handle(_ context.Context, _ string) State {
	return m.lastState
}
