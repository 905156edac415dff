package elevation

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// SudoEscalator re-executes the current binary under sudo -E, preserving
// arguments and environment. On success the process is replaced.
type SudoEscalator struct {
	lookPath   func(file string) (string, error)
	executable func() (string, error)
	execve     func(argv0 string, argv []string, envv []string) error
}

func NewSudoEscalator() *SudoEscalator {
	return &SudoEscalator{
		lookPath:   exec.LookPath,
		executable: os.Executable,
		execve:     unix.Exec,
	}
}

func (e *SudoEscalator) Escalate(args []string) error {
	sudoPath, lookErr := e.lookPath("sudo")
	if lookErr != nil {
		return fmt.Errorf("sudo not found in PATH: %v", lookErr)
	}

	self, selfErr := e.executable()
	if selfErr != nil {
		return fmt.Errorf("failed to resolve own binary: %v", selfErr)
	}

	argv := append([]string{"sudo", "-E", self}, args[1:]...)
	return e.execve(sudoPath, argv, os.Environ())
}
