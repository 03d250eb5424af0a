package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConfirmPrompter asks the user yes/no questions before destructive
// operations. Declining is a no-op for the caller, not an error.
type ConfirmPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConfirmPrompter creates a prompter over the given streams, defaulting
// to stdin/stdout.
func NewConfirmPrompter(reader io.Reader, writer io.Writer) *ConfirmPrompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &ConfirmPrompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Confirm prints the prompt and reads a y/n answer. Anything but an
// explicit yes counts as no.
func (p *ConfirmPrompter) Confirm(prompt string) bool {
	fmt.Fprintf(p.writer, "%s [y/N]: ", WarningStyle.Render(prompt))

	line, err := p.reader.ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

// AutoConfirm answers yes to everything. Used for --yes scripting runs.
type AutoConfirm struct{}

// Confirm always reports yes.
func (AutoConfirm) Confirm(_ string) bool { return true }
