// Package iocli reads answers and passwords for command line tools.
package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter пишет подсказки в Out и читает ответы из In
type Prompter struct {
	out    io.Writer
	in     io.Reader
	reader *bufio.Reader
}

// New creates a prompter. A terminal on in hides typed passwords.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

// NewStdio prompter поверх os.Stdin и os.Stdout
func NewStdio() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// ReadInput печатает prompt и возвращает строку без пробелов по краям
func (p *Prompter) ReadInput(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

// ReadPassword читает пароль без эха, если In это терминал
func (p *Prompter) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	// не терминал: pipe или тесты
	line, err := p.readLine()
	fmt.Fprintln(p.out)
	return line, err
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
