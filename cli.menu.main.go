package main

import (
	"context"
)

// MainMenu is the initial state: five numbered actions plus the exit token.
type MainMenu struct {
	shell *Shell
}

// NewMainMenu provides the entry screen of the session.
func NewMainMenu(shell *Shell) *MainMenu {
	return &MainMenu{shell: shell}
}

func (m *MainMenu) Render() {
	c := m.shell.console
	c.Heading("Library menu:\n")
	c.Option("1. Add a book")
	c.Option("2. Delete book")
	c.Option("3. Search for a book")
	c.Option("4. Show all books")
	c.Option("5. Change book status\n")
	c.Alert("%s. Exit\n", m.shell.tokens.Exit)
	c.Prompt("Select an action: ")
}

func (m *MainMenu) Handle(ctx context.Context, input string) State {
	switch input {
	case "1":
		return NewAddMenu(m.shell)
	case "2":
		return NewDeleteMenu(m.shell)
	case "3":
		return NewSearchMenu(m.shell)
	case "4":
		books, err := m.shell.catalogue.ListAll(ctx)
		if err != nil {
			m.shell.fail(m, err)
			return NewMainMenu(m.shell)
		}
		return NewShowBook(m.shell, books, m)
	case "5":
		return NewChangeStatusMenu(m.shell)
	case m.shell.tokens.Exit:
		return nil
	default:
		m.shell.incorrectSelection()
		return NewMainMenu(m.shell)
	}
}
