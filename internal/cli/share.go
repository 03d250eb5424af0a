package cli

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StdoutSharer delivers share reports by printing them, titled, to the
// given writer. It is the default share collaborator; platform share
// sheets and clipboards are swappable behind the same interface.
type StdoutSharer struct {
	writer io.Writer
}

// NewStdoutSharer creates a sharer over the given writer, defaulting to
// stdout.
func NewStdoutSharer(w io.Writer) *StdoutSharer {
	if w == nil {
		w = os.Stdout
	}
	return &StdoutSharer{writer: w}
}

// Share prints the titled report.
func (s *StdoutSharer) Share(ctx context.Context, title, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.writer, "%s\n\n%s\n", TitleStyle.Render(title), text); err != nil {
		return fmt.Errorf("failed to write share report: %w", err)
	}
	return nil
}
