//go:build windows

package executor

import (
	"os/exec"
	"syscall"
)

func setRawCommandLine(c *exec.Cmd, shell, flag, command string) {
	c.SysProcAttr = &syscall.SysProcAttr{CmdLine: rawCommandLine(shell, flag, command)}
}
