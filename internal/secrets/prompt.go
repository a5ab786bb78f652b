package secrets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadSecretValue prompts for a secret value without echoing input.
//
// When stdin is a terminal, the prompt is written to stderr and the typed
// characters are read with local echo disabled. When stdin is not a terminal
// the value is read as a single line from stdin (trailing newline stripped),
// which supports piped input and scripted use.
//
// The value is returned verbatim: no trimming beyond the line terminator,
// no content validation, and an empty string is permitted.
func ReadSecretValue(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		value, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr) // Add newline after hidden input
		if err != nil {
			return "", fmt.Errorf("failed to read secret value: %w", err)
		}
		return string(value), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read secret value from stdin: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
