package proc

type Contract interface {
	// Killall terminates all processes with the given names. A name with
	// no running process is not an error.
	Killall(names ...string) error
	// Kill sends SIGTERM to the given pids. Already-gone pids are tolerated.
	Kill(pids []int) error
}
