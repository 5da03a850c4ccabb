// Package prompt collects goals and daily tracking answers from the user.
package prompt

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrInvalidCount is returned when a count answer is not a non-negative integer.
	ErrInvalidCount = errors.New("invalid count")
	// ErrInvalidDate is returned when a date answer is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrAborted is returned when the user aborts an interactive prompt.
	ErrAborted = errors.New("aborted")
)

// Prompter asks the user questions one at a time.
type Prompter interface {
	// Note shows informational text without expecting an answer.
	Note(text string)
	// Text asks for a free-form line of text.
	Text(label string) (string, error)
	// Int asks for a non-negative integer.
	Int(label string) (int, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

// ForTerminal returns a huh-backed Prompter when in is a terminal and plain
// is false, and a line-based Prompter otherwise. Accessible puts the huh
// forms in screen-reader mode.
func ForTerminal(in *os.File, out io.Writer, plain, accessible bool) Prompter {
	if !plain && (isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd())) {
		return NewForm(out).Accessible(accessible)
	}
	return NewLine(in, out)
}

// parseCount parses a non-negative integer answer.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, &AnswerError{Answer: s, Err: ErrInvalidCount}
	}
	return n, nil
}

// isYes reports whether an answer means yes.
func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

// AnswerError reports an answer that could not be accepted.
type AnswerError struct {
	Answer string
	Err    error
}

func (e *AnswerError) Error() string {
	return e.Err.Error() + ": " + strconv.Quote(strings.TrimSpace(e.Answer))
}

func (e *AnswerError) Unwrap() error { return e.Err }
