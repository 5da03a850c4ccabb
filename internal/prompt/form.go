package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#878580"))

// Form is a Prompter that shows each question as a single-field huh form
// with inline validation.
type Form struct {
	out        io.Writer
	accessible bool
}

// NewForm creates a huh-backed Prompter.
func NewForm(out io.Writer) *Form {
	return &Form{out: out}
}

// Accessible switches to huh's screen-reader friendly mode.
func (f *Form) Accessible(v bool) *Form {
	f.accessible = v
	return f
}

func (f *Form) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(false).
		WithAccessible(f.accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("running prompt: %w", err)
	}
	return nil
}

// Note implements Prompter.
func (f *Form) Note(text string) {
	fmt.Fprintln(f.out, noteStyle.Render(text))
}

// Text implements Prompter.
func (f *Form) Text(label string) (string, error) {
	var s string
	err := f.run(huh.NewInput().Title(label).Value(&s))
	return s, err
}

// Int implements Prompter.
func (f *Form) Int(label string) (int, error) {
	var s string
	input := huh.NewInput().
		Title(label).
		Value(&s).
		Validate(func(v string) error {
			_, err := parseCount(v)
			return err
		})
	if err := f.run(input); err != nil {
		return 0, err
	}
	return parseCount(s)
}

// Confirm implements Prompter.
func (f *Form) Confirm(label string) (bool, error) {
	var v bool
	err := f.run(huh.NewConfirm().
		Title(label).
		Affirmative("Yes").
		Negative("No").
		Value(&v))
	return v, err
}
