// Package prompt asks the user for missing command values. When the session is
// not interactive every question resolves to its default.
package prompt

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// Prompter asks questions on a terminal.
type Prompter struct {
	Interactive bool
	stdio       terminal.Stdio
}

// New returns a Prompter on the process stdio. It is interactive only when
// stdin and stdout are terminals and nonInteractive is false.
func New(nonInteractive bool) *Prompter {
	return &Prompter{
		Interactive: !nonInteractive && IsTerminal(os.Stdin) && IsTerminal(os.Stdout),
		stdio:       terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr},
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Ask prompts for a single line. An empty answer, or a non-interactive
// session, yields def.
func (p *Prompter) Ask(message, def string, validators ...survey.Validator) (string, error) {
	if !p.Interactive {
		return def, nil
	}

	var answer string
	opts := []survey.AskOpt{survey.WithStdio(p.stdio.In, p.stdio.Out, p.stdio.Err)}
	for _, v := range validators {
		opts = append(opts, survey.WithValidator(v))
	}
	if err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, opts...); err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		return def, nil
	}
	return strings.TrimSpace(answer), nil
}

// ValueRequired rejects blank answers.
func ValueRequired(val any) error {
	str, ok := val.(string)
	if !ok || strings.TrimSpace(str) == "" {
		return errors.New("value is required")
	}
	return nil
}
