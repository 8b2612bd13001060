//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the whole process group led by pid, which
// takes the renderer and GPU helpers down with the browser.
// Errors are ignored: the caller still kills the leader through the launcher.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
