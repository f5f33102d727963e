package main

import (
	"context"
	"strings"
)

// ChangeStatusMenu moves a book to another lending status: pick a book
// by id, pick a status from the enumerated set, save.
type ChangeStatusMenu struct {
	shell  *Shell
	id     *int64
	status *BookStatus
}

// NewChangeStatusMenu provides a status workflow with nothing selected.
func NewChangeStatusMenu(shell *Shell) *ChangeStatusMenu {
	return &ChangeStatusMenu{shell: shell}
}

func (m *ChangeStatusMenu) Render() {
	c := m.shell.console
	c.Heading("Change book status:\n")
	c.Option("1. Book ID - %s", fmtIDField(m.id))
	c.Option("2. Status - %s\n", fmtStatusField(m.status))
	c.Alert("%s. Change status\t\t\t%s. Back\n", m.shell.tokens.Save, m.shell.tokens.Back)
	c.Prompt("Select the field you want to change: ")
}

func (m *ChangeStatusMenu) Handle(ctx context.Context, input string) State {
	switch input {
	case "1":
		id, err := m.shell.promptID(ctx)
		if err != nil {
			m.id = nil
			m.shell.fail(m, err)
			return m
		}
		book, err := m.shell.catalogue.FindByID(ctx, id)
		if err != nil {
			m.id = nil
			m.shell.fail(m, err)
			return m
		}
		m.id = &book.ID
		m.status = &book.Status
		return m
	case "2":
		status, err := m.pickStatus(ctx)
		if err != nil {
			m.shell.fail(m, err)
			return m
		}
		if status != nil {
			m.status = status
		}
		return m
	case m.shell.tokens.Save:
		err := m.shell.catalogue.ChangeStatus(ctx, idOrZero(m.id), statusOrEmpty(m.status))
		if err != nil {
			m.shell.fail(m, err)
			return m
		}
		return NewConfirmation(m.shell, "Success completion",
			"Book status changed successfully", nil, m)
	case m.shell.tokens.Back:
		return NewMainMenu(m.shell)
	default:
		m.shell.incorrectSelection()
		return m
	}
}

// pickStatus runs the status-picker sub-flow: list the fixed status set
// 1-based, read one selection line. A nil status without error means
// the selection was aborted: the back token, or a position outside the
// set, both keep the prior status.
func (m *ChangeStatusMenu) pickStatus(ctx context.Context) (*BookStatus, error) {
	c := m.shell.console
	c.Heading("Select status:")
	c.Option("Current status: %s", fmtStatusField(m.status))
	for i, status := range Statuses() {
		c.Item("%d. %s", i+1, status)
	}
	c.Alert("\n%s. Back\n", m.shell.tokens.Back)
	c.Prompt("Select a new status: ")

	line, err := m.shell.ReadLine(ctx)
	if err != nil {
		return nil, err
	}
	m.shell.console.Clear()
	input := strings.TrimSpace(line)
	if input == m.shell.tokens.Back {
		return nil, nil
	}
	pos, err := m.shell.validator.ID(input)
	if err != nil {
		return nil, err
	}
	status, ok := StatusAt(int(pos))
	if !ok {
		// out of range aborts the selection like the back token.
		return nil, nil
	}
	return &status, nil
}

func statusOrEmpty(v *BookStatus) BookStatus {
	if v == nil {
		return ""
	}
	return *v
}
