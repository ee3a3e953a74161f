package browser

import (
	"errors"

	"github.com/shirou/gopsutil/v4/process"
)

// killTree force-kills a process and all of its descendants, children
// first. Chrome forks renderer and GPU helper processes that survive a
// graceful browser close, so termination always walks the tree.
func killTree(pid int) error {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		// Process already gone; nothing to reap.
		return nil
	}
	return killProc(proc)
}

func killProc(proc *process.Process) error {
	var errs []error

	children, err := proc.Children()
	if err == nil {
		for _, child := range children {
			if kerr := killProc(child); kerr != nil {
				errs = append(errs, kerr)
			}
		}
	}

	if err := proc.Kill(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
