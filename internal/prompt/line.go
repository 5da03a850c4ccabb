package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line is a Prompter that writes labels to out and reads answers line by line.
type Line struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLine creates a line-based Prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{reader: bufio.NewReader(in), out: out}
}

// Note implements Prompter.
func (l *Line) Note(text string) {
	fmt.Fprintln(l.out, text)
}

// Text implements Prompter. A final line without a newline is accepted;
// end of input with nothing read returns io.ErrUnexpectedEOF.
func (l *Line) Text(label string) (string, error) {
	fmt.Fprintf(l.out, "%s ", label)
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer to %q: %w", label, io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("reading answer to %q: %w", label, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int implements Prompter.
func (l *Line) Int(label string) (int, error) {
	s, err := l.Text(label)
	if err != nil {
		return 0, err
	}
	return parseCount(s)
}

// Confirm implements Prompter.
func (l *Line) Confirm(label string) (bool, error) {
	s, err := l.Text(label)
	if err != nil {
		return false, err
	}
	return isYes(s), nil
}
