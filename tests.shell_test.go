package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boomState simulates a programming defect inside a state handler.
type boomState struct{}

func (s *boomState) Render() {}

func (s *boomState) Handle(_ context.Context, _ string) State {
	panic("defect inside a handler")
}

func TestShellTransitionRecoversFromPanic(t *testing.T) {
	fx := newTestShell(t)
	state := &boomState{}

	next := fx.shell.transition(context.TODO(), state, "anything")

	// the session survives with the same state and a generic alert.
	assert.Same(t, state, next)
	assert.Contains(t, fx.console.Output(), "Something went wrong. Please try again.")
}

// Any state fed any input yields a usable next state instead of a
// crash. The exit token on the main menu is the single nil transition.
func TestShellTransitionsNeverRaise(t *testing.T) {
	fx := newTestShell(t)
	fx.addBook(t, "Dune", "Frank Herbert", 1965)

	factories := map[string]func() State{
		"MainMenu":         func() State { return NewMainMenu(fx.shell) },
		"AddMenu":          func() State { return NewAddMenu(fx.shell) },
		"DeleteMenu":       func() State { return NewDeleteMenu(fx.shell) },
		"SearchMenu":       func() State { return NewSearchMenu(fx.shell) },
		"ChangeStatusMenu": func() State { return NewChangeStatusMenu(fx.shell) },
		"ShowBook":         func() State { return NewShowBook(fx.shell, nil, NewMainMenu(fx.shell)) },
		"Confirmation":     func() State { return NewConfirmation(fx.shell, "done", "", nil, NewMainMenu(fx.shell)) },
	}
	inputs := []string{"", "0", "1", "2", "3", "4", "5", "9", "s", "b", "d", "q", "-1", "not a number", strings.Repeat("x", 500)}

	for name, fresh := range factories {
		for _, input := range inputs {
			// keep one spare line around for states that prompt again.
			select {
			case fx.lines <- "x":
			default:
			}
			state := fresh()
			state.Render()
			next := fx.shell.transition(context.TODO(), state, input)
			if name == "MainMenu" && input == fx.shell.tokens.Exit {
				assert.Nil(t, next)
				continue
			}
			assert.NotNilf(t, next, "state %s on input %q", name, input)
		}
	}
}

func TestShellRun(t *testing.T) {
	t.Run("exit token ends the session", func(t *testing.T) {
		fx := newTestShell(t)
		fx.feed("q")

		require.NoError(t, fx.shell.Run(context.Background()))
		assert.Contains(t, fx.console.Output(), "Goodbye!")
	})

	t.Run("interrupt ends the session", func(t *testing.T) {
		fx := newTestShell(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, fx.shell.Run(ctx))
		assert.Contains(t, fx.console.Output(), "Goodbye!")
	})

	t.Run("closed input ends the session", func(t *testing.T) {
		fx := newTestShell(t)
		close(fx.lines)

		require.NoError(t, fx.shell.Run(context.Background()))
		assert.Contains(t, fx.console.Output(), "Goodbye!")
	})

	t.Run("full add session", func(t *testing.T) {
		fx := newTestShell(t)
		// main -> add -> fill three fields -> save -> ack -> back -> exit.
		fx.feed("1", "1", "Dune", "2", "Frank Herbert", "3", "1965", "s", "", "b", "q")

		require.NoError(t, fx.shell.Run(context.Background()))

		book, err := fx.catalogue.FindByID(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, StatusAvailable, book.Status)

		out := fx.console.Output()
		assert.Contains(t, out, "Library menu:")
		assert.Contains(t, out, "Add book menu:")
		assert.Contains(t, out, "The book has been added successfully")
		assert.Contains(t, out, "Goodbye!")
	})
}
