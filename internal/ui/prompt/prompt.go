// File: internal/ui/prompt/prompt.go
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Asks the user before a destructive step, such as replacing an existing file
type Prompter interface {
	// Returns true only when the user types expectedValue exactly
	Confirm(message string, expectedValue string) (bool, error)
}

// Prompts on a pair of streams, normally stdin and stderr
type StandardPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewStandardPrompter(in io.Reader, out io.Writer) *StandardPrompter {
	return &StandardPrompter{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

func (p *StandardPrompter) Confirm(message string, expectedValue string) (bool, error) {
	if expectedValue == "" {
		return false, errors.New("expected confirmation value cannot be empty")
	}

	fmt.Fprintln(p.writer, message)
	fmt.Fprintf(p.writer, "Type '%s' to continue: ", expectedValue)

	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("error reading user input: %w", err)
	}
	// A final line without a newline still counts
	if errors.Is(err, io.EOF) && input == "" {
		return false, nil
	}

	return strings.TrimSpace(input) == expectedValue, nil
}
