//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// sysProcAttr starts the player in its own process group, so helpers it spawns die with it.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

func killProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	// negative pid signals the whole group
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
