package main

import (
	"errors"
	"io"

	"github.com/peterh/liner"
)

// consoleSource reads INPUT lines from an interactive terminal with line
// editing and per-run history
type consoleSource struct {
	ln *liner.State
}

func newConsoleSource() *consoleSource {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &consoleSource{ln: ln}
}

// ReadLine prompts with nothing; INPUT has already printed its prompt
func (c *consoleSource) ReadLine() (string, error) {
	line, err := c.ln.Prompt("")
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if line != "" {
		c.ln.AppendHistory(line)
	}
	return line, nil
}

func (c *consoleSource) Close() error {
	return c.ln.Close()
}
