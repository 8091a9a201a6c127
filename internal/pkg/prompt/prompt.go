// Package prompt reads operator input from the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

const deviceNamePrompt = "Enter the device name (including SEP) to sort: "

// ErrInterrupted is returned when the operator presses Ctrl-C at a prompt.
var ErrInterrupted = errors.New("prompt interrupted")

type Prompter struct {
	rl *readline.Instance
}

func New() (*Prompter, error) {
	return NewWithConfig(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// NewWithConfig builds a Prompter on top of cfg, e.g. to read from something
// other than the terminal.
func NewWithConfig(cfg *readline.Config) (*Prompter, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Prompter{rl: rl}, nil
}

// Line shows prompt and returns the line typed, without its newline.
func (p *Prompter) Line(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if err != nil {
		return "", translate(err)
	}
	return line, nil
}

// Password reads a line without echoing it.
func (p *Prompter) Password(prompt string) (string, error) {
	pw, err := p.rl.ReadPassword(prompt)
	if err != nil {
		return "", translate(err)
	}
	return string(pw), nil
}

// DeviceName asks for the phone to sort.
func (p *Prompter) DeviceName() (string, error) {
	return p.Line(deviceNamePrompt)
}

// Stdout returns a writer that does not clobber the prompt line.
func (p *Prompter) Stdout() io.Writer {
	return p.rl.Stdout()
}

// Stderr returns a writer that does not clobber the prompt line.
func (p *Prompter) Stderr() io.Writer {
	return p.rl.Stderr()
}

func (p *Prompter) Close() error {
	return p.rl.Close()
}

func translate(err error) error {
	if errors.Is(err, readline.ErrInterrupt) {
		return ErrInterrupted
	}
	return err
}
