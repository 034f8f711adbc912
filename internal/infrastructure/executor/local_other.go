//go:build !windows

package executor

import "os/exec"

// setRawCommandLine is a no-op: POSIX shells receive the command as a single argv entry.
func setRawCommandLine(*exec.Cmd, string, string, string) {}
