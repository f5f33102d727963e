package main

import (
	"context"
)

// AddMenu is the book creation workflow. The draft holds possibly
// partial field values until the save token commits them. A field that
// fails validation resets to unset; the other fields keep their values.
type AddMenu struct {
	shell  *Shell
	title  *string
	author *string
	year   *int
}

// NewAddMenu provides an add workflow with an empty draft.
func NewAddMenu(shell *Shell) *AddMenu {
	return &AddMenu{shell: shell}
}

func (m *AddMenu) Render() {
	c := m.shell.console
	c.Heading("Add book menu:\n")
	c.Option("1. Title - %s", fmtStringField(m.title))
	c.Option("2. Author - %s", fmtStringField(m.author))
	c.Option("3. Year - %s\n", fmtIntField(m.year))
	c.Alert("%s. Save\t\t\t%s. Back\n", m.shell.tokens.Save, m.shell.tokens.Back)
	c.Prompt("Select the field you want to change: ")
}

func (m *AddMenu) Handle(ctx context.Context, input string) State {
	switch input {
	case "1":
		title, err := m.shell.promptTitle(ctx)
		if err != nil {
			m.title = nil
			m.shell.fail(m, err)
			return m
		}
		m.title = &title
		return m
	case "2":
		author, err := m.shell.promptAuthor(ctx)
		if err != nil {
			m.author = nil
			m.shell.fail(m, err)
			return m
		}
		m.author = &author
		return m
	case "3":
		year, err := m.shell.promptYear(ctx)
		if err != nil {
			m.year = nil
			m.shell.fail(m, err)
			return m
		}
		m.year = &year
		return m
	case m.shell.tokens.Save:
		book, err := m.shell.catalogue.Add(ctx, fieldOrZero(m.title), fieldOrZero(m.author), intOrZero(m.year))
		if err != nil {
			// the draft survives a rejected save.
			m.shell.fail(m, err)
			return m
		}
		return NewConfirmation(m.shell, "Success completion",
			"The book has been added successfully", []Book{book}, NewAddMenu(m.shell))
	case m.shell.tokens.Back:
		return NewMainMenu(m.shell)
	default:
		m.shell.incorrectSelection()
		return m
	}
}

func fieldOrZero(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
