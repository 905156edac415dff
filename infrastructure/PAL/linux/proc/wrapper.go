package proc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"wgns/infrastructure/PAL"
)

// Wrapper terminates processes either by name (killall) or by pid.
type Wrapper struct {
	commander PAL.Commander
	kill      func(pid int, sig unix.Signal) error
}

func NewWrapper(commander PAL.Commander) Contract {
	return &Wrapper{
		commander: commander,
		kill:      unix.Kill,
	}
}

func (w *Wrapper) Killall(names ...string) error {
	// killall exits non-zero when no such process exists; that is the
	// normal case on a host that was never isolated, so it is swallowed.
	_ = w.commander.Run("killall", names...)
	return nil
}

func (w *Wrapper) Kill(pids []int) error {
	for _, pid := range pids {
		if err := w.kill(pid, unix.SIGTERM); err != nil && !errors.Is(err, unix.ESRCH) {
			return fmt.Errorf("failed to terminate pid %d: %v", pid, err)
		}
	}
	return nil
}
