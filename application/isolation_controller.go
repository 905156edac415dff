package application

import "context"

// IsolationController drives the host between its integrated state
// (physical interfaces in the root namespace, no tunnel) and its isolated
// state (physical interfaces sequestered in a separate namespace, tunnel
// as the only egress from the root namespace).
type IsolationController interface {
	// Up enters the isolated state using the given WireGuard peer
	// configuration file.
	Up(peerConfPath string) error
	// Down reverses Up best-effort, tolerating a half-applied Up.
	Down() error
	// Exec replaces the current process with argv running inside the
	// isolated namespace under the invoking user's identity. It only
	// returns on error.
	Exec(argv []string) error
	// Status reports the current isolation state.
	Status(ctx context.Context) (StatusReport, error)
}

// StatusReport describes the observable pieces of the isolated state.
type StatusReport struct {
	NamespacePresent bool
	TunnelPresent    bool
	TunnelAddress    string
	ResolverLocked   bool
	ReachableVia     string
}

// Isolated reports whether the host is fully in the isolated state with a
// reachable tunnel.
func (r StatusReport) Isolated() bool {
	return r.NamespacePresent && r.TunnelPresent && r.ReachableVia != ""
}
