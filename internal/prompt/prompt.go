// Package prompt asks the user yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks a yes/no question and returns the answer.
type Confirmer interface {
	Confirm(message string, def bool) (bool, error)
}

// Prompt reads answers from r and writes questions to w.
type Prompt struct {
	reader *bufio.Reader
	w      io.Writer
}

// New creates a Prompt over r and w.
func New(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{reader: bufio.NewReader(r), w: w}
}

// Confirm prints "? message (Y/n) " and reads one line. Empty input or end of
// input selects def; unrecognized answers ask again.
func (p *Prompt) Confirm(message string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(p.w, "? %s (%s) ", message, hint)

		line, err := p.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading answer: %w", err)
		}

		answer, ok := parseAnswer(line, def)
		if ok {
			return answer, nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.w)
			return def, nil
		}
		fmt.Fprintln(p.w, "Please answer yes or no.")
	}
}

func parseAnswer(line string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// Static answers every question with its default, for non-interactive runs.
type Static struct{}

// Confirm returns def.
func (Static) Confirm(_ string, def bool) (bool, error) { return def, nil }
