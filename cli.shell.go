package main

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// State is one screen of the menu machine. Render draws the current
// prompt; Handle consumes one input line and yields the next state.
// A nil next state is the explicit quit request, reachable only from
// the main menu. Handle never returns an error: every recoverable
// failure is absorbed at the state boundary.
type State interface {
	Render()
	Handle(ctx context.Context, input string) State
}

// Shell is the environment shared by every state: console, validator,
// catalogue, reserved tokens and the session logger. It owns the driver
// loop and the interrupt-aware line source.
type Shell struct {
	logger    *zap.Logger
	console   Consoler
	validator *Validator
	catalogue CatalogueProvider
	tokens    TokensConfig
	lines     <-chan string
}

// NewShell provides a ready to use shell.
func NewShell(logger *zap.Logger, console Consoler, validator *Validator, catalogue CatalogueProvider, tokens TokensConfig, lines <-chan string) *Shell {
	return &Shell{
		logger:    logger,
		console:   console,
		validator: validator,
		catalogue: catalogue,
		tokens:    tokens,
		lines:     lines,
	}
}

// ReadLine delivers the next input line or fails when the session
// context is cancelled by an interrupt.
func (sh *Shell) ReadLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-sh.lines:
		if !ok {
			return "", fmt.Errorf("input closed")
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Run drives the machine: render the current state, read one line,
// transition, repeat. It ends on the explicit quit request or on
// interrupt, both with a cleared screen and a farewell.
func (sh *Shell) Run(ctx context.Context) error {
	var state State = NewMainMenu(sh)
	sh.console.Clear()
	for {
		state.Render()
		line, err := sh.ReadLine(ctx)
		if err != nil {
			sh.logger.Info("shell: session interrupted", zap.String("state", stateName(state)))
			sh.farewell()
			return nil
		}
		sh.console.Clear()
		next := sh.transition(ctx, state, strings.TrimSpace(line))
		if next == nil {
			sh.logger.Info("shell: session ended by exit command")
			sh.farewell()
			return nil
		}
		state = next
	}
}

// transition runs one state transition under a panic guard, so a
// programming defect inside a handler can never kill the session.
func (sh *Shell) transition(ctx context.Context, state State, input string) (next State) {
	defer func() {
		if r := recover(); r != nil {
			sh.logger.Error("shell: panic during transition", zap.String("state", stateName(state)), zap.Any("error", r))
			sh.console.Alert("Something went wrong. Please try again.\n")
			next = state
		}
	}()
	next = state.Handle(ctx, input)
	sh.logger.Debug("shell: transition",
		zap.String("from", stateName(state)),
		zap.String("to", stateName(next)),
	)
	return next
}

// fail surfaces an absorbed failure: a human-readable message on the
// console, and a log entry that keeps bad input apart from defects.
func (sh *Shell) fail(state State, err error) {
	sh.console.Alert("%s\n", err)
	if IsUserFacing(err) {
		sh.logger.Info("shell: rejected input", zap.String("state", stateName(state)), zap.Error(err))
		return
	}
	sh.logger.Error("shell: unexpected failure", zap.String("state", stateName(state)), zap.Error(err))
}

// incorrectSelection handles any input outside a state transition table.
func (sh *Shell) incorrectSelection() {
	sh.console.Alert("Incorrect selection. Please try again.\n")
}

func (sh *Shell) farewell() {
	sh.console.Clear()
	sh.console.Farewell("Goodbye!")
}

// stateName reports a short state identifier for the logs.
func stateName(state State) string {
	if state == nil {
		return "exit"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", state), "*main.")
}
