package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

// prompter reads line answers from an input stream. It returns io.EOF
// once the input is exhausted.
type prompter struct {
	in   *bufio.Reader
	out  io.Writer
	file *os.File // set when reading from a terminal-capable file
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok {
		p.file = f
	}
	return p
}

var stdinPrompter *prompter

// console returns the prompter bound to the process stdin. It is shared so
// buffered input is never lost between prompts.
func console() *prompter {
	if stdinPrompter == nil {
		stdinPrompter = newPrompter(os.Stdin, os.Stdout)
	}
	return stdinPrompter
}

// Ask prints label and returns the trimmed answer
func (p *prompter) Ask(label string) (string, error) {
	line, err := p.readLine(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine prints label and returns the answer without its line ending
func (p *prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, ui.StyleInfo.Render(label+": "))

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	// A final line without newline still counts
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// Confirm asks a yes/no question until it gets Y or N
func (p *prompter) Confirm(question string) (bool, error) {
	for {
		answer, err := p.Ask(question + " [Y/N]")
		if err != nil {
			return false, err
		}

		switch strings.ToUpper(answer) {
		case "Y", "YES":
			return true, nil
		case "N", "NO":
			return false, nil
		}
		fmt.Fprintln(p.out, ui.FormatWarning(fmt.Sprintf("Invalid response, %q", answer)))
	}
}

// Password reads a secret without echo when input is a terminal
func (p *prompter) Password(label string) (string, error) {
	if p.file == nil || !term.IsTerminal(int(p.file.Fd())) {
		return p.readLine(label)
	}

	fmt.Fprint(p.out, ui.StyleInfo.Render(label+": "))
	secret, err := term.ReadPassword(int(p.file.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(secret), nil
}

// AskAsset prompts for every asset field except the ID
func (p *prompter) AskAsset() (domain.AssetInput, error) {
	var in domain.AssetInput

	fields := []struct {
		label  string
		target *string
	}{
		{"Serial number (SN)", &in.SerialNumber},
		{"Category", &in.Category},
		{"Type", &in.Type},
		{"Location", &in.Location},
		{"Assignee (blank for " + domain.Unassigned + ")", &in.Assignee},
		{"Description", &in.Description},
		{"Color", &in.Color},
		{"Status", &in.Status},
	}

	for _, f := range fields {
		answer, err := p.Ask(f.label)
		if err != nil {
			return in, err
		}
		*f.target = answer
	}
	return in, nil
}
