package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// terminalPrompt reads passwords without echo when in is a terminal and
// falls back to reading one line otherwise, so scripts can pipe a password.
type terminalPrompt struct {
	in  *os.File
	out io.Writer

	lines *bufio.Reader
}

// newTerminalPrompt shares lines with the caller so piped input is not
// buffered away from later reads.
func newTerminalPrompt(in *os.File, lines *bufio.Reader, out io.Writer) *terminalPrompt {
	return &terminalPrompt{in: in, out: out, lines: lines}
}

func (p *terminalPrompt) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(password), nil
	}

	line, err := p.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
