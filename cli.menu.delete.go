package main

import (
	"context"
)

// DeleteMenu removes one book: any plain input is treated as a
// candidate identifier and looked up for preview; the delete token
// commits the removal of the previewed candidate.
type DeleteMenu struct {
	shell *Shell
	id    *int64
	book  *Book
}

// NewDeleteMenu provides a delete workflow with no candidate loaded.
func NewDeleteMenu(shell *Shell) *DeleteMenu {
	return &DeleteMenu{shell: shell}
}

func (m *DeleteMenu) Render() {
	c := m.shell.console
	c.Heading("Delete book menu:\n")
	c.Option("Enter a book ID to preview it\n")
	if m.book != nil {
		c.Prompt(" --- \n")
		c.Item("%s", *m.book)
		c.Prompt(" --- \n\n")
	}
	c.Alert("%s. Delete book\t\t\t%s. Back\n", m.shell.tokens.Delete, m.shell.tokens.Back)
	c.Prompt("Book ID: ")
}

func (m *DeleteMenu) Handle(ctx context.Context, input string) State {
	switch input {
	case m.shell.tokens.Back:
		return NewMainMenu(m.shell)
	case m.shell.tokens.Delete:
		book, err := m.shell.catalogue.Remove(ctx, idOrZero(m.id))
		if err != nil {
			m.shell.fail(m, err)
			return m
		}
		return NewConfirmation(m.shell, "Success completion",
			"The book has been deleted successfully", []Book{book}, NewDeleteMenu(m.shell))
	default:
		id, err := m.shell.validator.ID(input)
		if err != nil {
			m.shell.fail(m, err)
			return m
		}
		book, err := m.shell.catalogue.FindByID(ctx, id)
		if err != nil {
			m.shell.fail(m, err)
			return m
		}
		m.id = &book.ID
		m.book = &book
		return m
	}
}

func idOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
