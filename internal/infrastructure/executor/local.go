package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// LocalExecutor hands command text verbatim to the host shell.
// The child inherits the configured stdio streams and runs without a timeout.
type LocalExecutor struct {
	shell     string
	shellFlag string
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

// Option customizes a LocalExecutor.
type Option func(*LocalExecutor)

// WithStdio replaces the process stdio the child would otherwise inherit.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *LocalExecutor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewLocalExecutor builds a new executor. An empty or "auto" shell resolves to
// cmd.exe on Windows and $SHELL (falling back to /bin/sh) elsewhere.
func NewLocalExecutor(shell string, opts ...Option) *LocalExecutor {
	name, flag := resolveShell(runtime.GOOS, shell, os.Getenv("SHELL"), os.Getenv("COMSPEC"))
	e := &LocalExecutor{
		shell:     name,
		shellFlag: flag,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute implements ports.CommandExecutor. A non-zero exit status is reported in the
// result, not as an error; only failing to start the shell is an error.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	c := e.command(ctx, command)

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		Ran:        true,
		DurationMS: time.Since(start).Milliseconds(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		result.Ran = false
		result.ExitCode = -1
		return result, err
	}
	return result, nil
}

func (e *LocalExecutor) command(ctx context.Context, command string) *exec.Cmd {
	c := exec.CommandContext(ctx, e.shell, e.shellFlag, command)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr
	setRawCommandLine(c, e.shell, e.shellFlag, command)
	return c
}

// Shell returns the resolved shell binary.
func (e *LocalExecutor) Shell() string {
	return e.shell
}

func resolveShell(goos, configured, envShell, comspec string) (string, string) {
	configured = strings.TrimSpace(configured)
	if configured == "auto" {
		configured = ""
	}
	if goos == "windows" {
		if configured == "" {
			configured = comspec
		}
		if configured == "" {
			configured = "cmd.exe"
		}
		if isPowerShell(configured) {
			return configured, "-Command"
		}
		return configured, "/C"
	}
	if configured == "" {
		configured = envShell
	}
	if configured == "" {
		configured = "/bin/sh"
	}
	return configured, "-c"
}

// rawCommandLine joins shell, flag and command without argument escaping.
// cmd.exe parses its own command line and does not understand the \" escapes
// that os/exec would add around the command text.
func rawCommandLine(shell, flag, command string) string {
	if strings.ContainsAny(shell, " \t") && !strings.HasPrefix(shell, `"`) {
		shell = `"` + shell + `"`
	}
	return shell + " " + flag + " " + command
}

func isPowerShell(shell string) bool {
	base := strings.ToLower(shell)
	return strings.HasSuffix(base, "powershell.exe") || strings.HasSuffix(base, "pwsh.exe") ||
		base == "powershell" || base == "pwsh"
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
