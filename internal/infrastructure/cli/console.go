package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/smartcmd-go/internal/ports"
)

// Console is the line-based terminal shared by the interactive loop and the execution gate.
// One buffered reader serves both so typed-ahead input is never lost between them.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole constructs a console referencing stdio.
func NewConsole(in io.Reader, out io.Writer) *Console {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints prompt and reads one line without its terminator.
// io.EOF is returned only when no characters were read.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line.
func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

var _ ports.Console = (*Console)(nil)
