package presentation

import (
	"context"
	"fmt"
)

type Runner struct {
	deps AppDependencies
}

func NewRunner(deps AppDependencies) *Runner {
	return &Runner{deps: deps}
}

func (r *Runner) Up(identifier string) error {
	peerConfPath, selectErr := r.deps.PeerSelection().SelectPath(identifier)
	if selectErr != nil {
		return selectErr
	}
	return r.deps.Controller().Up(peerConfPath)
}

func (r *Runner) Down() error {
	return r.deps.Controller().Down()
}

func (r *Runner) Exec(argv []string) error {
	return r.deps.Controller().Exec(argv)
}

// Status prints the report and returns whether the host is isolated with
// a reachable tunnel.
func (r *Runner) Status(ctx context.Context) (bool, error) {
	report, err := r.deps.Controller().Status(ctx)
	if err != nil {
		return false, err
	}

	conf := r.deps.Configuration()
	fmt.Printf("namespace %s:      %s\n", conf.NamespaceName, yesNo(report.NamespacePresent))
	fmt.Printf("tunnel %s:         %s\n", conf.TunnelName, yesNo(report.TunnelPresent))
	if report.TunnelAddress != "" {
		fmt.Printf("tunnel address:        %s\n", report.TunnelAddress)
	}
	fmt.Printf("resolver files locked: %s\n", yesNo(report.ResolverLocked))
	if report.ReachableVia != "" {
		fmt.Printf("tunnel reachable via:  %s\n", report.ReachableVia)
	} else {
		fmt.Printf("tunnel reachable:      no\n")
	}

	return report.Isolated(), nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
