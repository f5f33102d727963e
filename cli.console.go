package main

import (
	"io"

	"github.com/fatih/color"
)

// Consoler renders the menu screens. The roles (heading, option,
// alert, prompt, item) carry the information; colors stay cosmetic so
// any implementation rendering the same text is equivalent.
type Consoler interface {
	Heading(format string, a ...interface{})
	Option(format string, a ...interface{})
	Alert(format string, a ...interface{})
	Prompt(format string, a ...interface{})
	Item(format string, a ...interface{})
	Farewell(format string, a ...interface{})
	Clear()
}

// console implements Consoler on top of an io.Writer with the original
// color scheme: blue headings, green options, red alerts and token
// legends, yellow prompts, magenta book items and farewell.
type console struct {
	out      io.Writer
	heading  *color.Color
	option   *color.Color
	alert    *color.Color
	prompt   *color.Color
	item     *color.Color
	farewell *color.Color
}

// NewConsole provides a colored console writing to out. With noColor
// set, the same text is rendered without escape sequences.
func NewConsole(out io.Writer, noColor bool) Consoler {
	if noColor {
		color.NoColor = true
	}
	return &console{
		out:      out,
		heading:  color.New(color.FgBlue),
		option:   color.New(color.FgGreen),
		alert:    color.New(color.FgRed),
		prompt:   color.New(color.FgYellow),
		item:     color.New(color.FgMagenta),
		farewell: color.New(color.FgMagenta),
	}
}

// Heading prints a screen title line.
func (c *console) Heading(format string, a ...interface{}) {
	c.heading.Fprintf(c.out, format+"\n", a...)
}

// Option prints a selectable menu line.
func (c *console) Option(format string, a ...interface{}) {
	c.option.Fprintf(c.out, format+"\n", a...)
}

// Alert prints an error message or a reserved-token legend line.
func (c *console) Alert(format string, a ...interface{}) {
	c.alert.Fprintf(c.out, format+"\n", a...)
}

// Prompt prints an input invitation without a trailing newline.
func (c *console) Prompt(format string, a ...interface{}) {
	c.prompt.Fprintf(c.out, format, a...)
}

// Item prints one book record line.
func (c *console) Item(format string, a ...interface{}) {
	c.item.Fprintf(c.out, format+"\n", a...)
}

// Farewell prints the goodbye line.
func (c *console) Farewell(format string, a ...interface{}) {
	c.farewell.Fprintf(c.out, format+"\n", a...)
}

// Clear wipes the visible screen with the usual ANSI sequence.
func (c *console) Clear() {
	io.WriteString(c.out, "\x1b[2J\x1b[H")
}
