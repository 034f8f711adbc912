package platform

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/doeshing/smartcmd-go/internal/ports"
)

// NativeOpener starts files with the OS default handler (Explorer association, open, xdg-open).
// It does not wait for the started program.
type NativeOpener struct {
	goos string
}

// NewNativeOpener builds an opener for the running host.
func NewNativeOpener() *NativeOpener {
	return &NativeOpener{goos: runtime.GOOS}
}

// Open implements ports.Opener.
func (o *NativeOpener) Open(_ context.Context, path string) error {
	name, args := openCommand(o.goos, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	// Release the child; the opened program outlives this call.
	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		// The empty argument is the window title consumed by start.
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

var _ ports.Opener = (*NativeOpener)(nil)
