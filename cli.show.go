package main

import (
	"context"
)

// ShowBook is a pure display state: it lists the result books and
// returns to the stored previous state on any input whatsoever.
type ShowBook struct {
	shell     *Shell
	books     []Book
	lastState State
}

// NewShowBook provides a listing screen over the given results.
func NewShowBook(shell *Shell, books []Book, lastState State) *ShowBook {
	return &ShowBook{shell: shell, books: books, lastState: lastState}
}

func (m *ShowBook) Render() {
	c := m.shell.console
	c.Heading("Show books:")
	for _, book := range m.books {
		c.Prompt(" --- \n")
		c.Item("%s", book)
	}
	c.Prompt(" --- \n\n")
	c.Prompt("Press any key to exit to the last menu: ")
}

func (m *ShowBook) Handle(_ context.Context, _ string) State {
	return m.lastState
}
