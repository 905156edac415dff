package probe

import "context"

type Contract interface {
	// Reachable probes the given IPv4 addresses and returns the first one
	// that answers, or an error when none does before the deadline.
	Reachable(ctx context.Context, addrs []string) (string, error)
}
