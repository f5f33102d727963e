package main

import (
	"context"
)

// SearchMenu is the free-text search screen. It carries no data of its
// own: every non-token input is a query passed to the catalogue.
type SearchMenu struct {
	shell *Shell
}

// NewSearchMenu provides the search screen.
func NewSearchMenu(shell *Shell) *SearchMenu {
	return &SearchMenu{shell: shell}
}

func (m *SearchMenu) Render() {
	c := m.shell.console
	c.Heading("Search book menu:\n")
	c.Option("Search by title, author or year\n")
	c.Alert("%s. Back\n", m.shell.tokens.Back)
	c.Prompt("Search field: ")
}

func (m *SearchMenu) Handle(ctx context.Context, input string) State {
	switch input {
	case m.shell.tokens.Back:
		return NewMainMenu(m.shell)
	default:
		books, err := m.shell.catalogue.FindByQuery(ctx, input)
		if err != nil {
			m.shell.fail(m, err)
			return m
		}
		return NewShowBook(m.shell, books, m)
	}
}
