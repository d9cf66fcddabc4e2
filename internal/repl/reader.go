// Package repl contains the line-reading half of the logikusi driver: a
// direct bufio-based reader for piped input and an interactive
// readline-based reader for a real terminal session, selected by
// cmd/logikusi at startup.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads one logical input line at a time from a source, with an
// adjustable prompt for implementations that can display one.
type LineReader interface {
	// ReadLine blocks until a non-blank line is available and returns it
	// with leading/trailing whitespace trimmed. At end of input it returns
	// ("", io.EOF).
	ReadLine() (string, error)

	// SetPrompt changes the prompt shown before the next read, if the
	// implementation displays one at all.
	SetPrompt(prompt string)

	// Close releases any resources (terminal state, history file) held by
	// the reader.
	Close() error
}

// DirectReader reads lines straight off of r with no line editing or
// history; it is used for piped/non-tty input and whenever --direct is
// given.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader returns a DirectReader reading from r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

func (d *DirectReader) ReadLine() (string, error) {
	var line string
	for strings.TrimSpace(line) == "" {
		var err error
		line, err = d.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		if err == io.EOF && strings.TrimSpace(line) == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

func (d *DirectReader) SetPrompt(string) {}

func (d *DirectReader) Close() error { return nil }

// InteractiveReader reads lines from stdin via GNU-readline-style editing
// and history, for use when logikusi is attached to a real terminal.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader starts a readline session with the given initial
// prompt.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

func (i *InteractiveReader) ReadLine() (string, error) {
	var line string
	for strings.TrimSpace(line) == "" {
		var err error
		line, err = i.rl.Readline()
		if err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(line), nil
}

func (i *InteractiveReader) SetPrompt(prompt string) {
	i.rl.SetPrompt(prompt)
}

func (i *InteractiveReader) Close() error {
	return i.rl.Close()
}
