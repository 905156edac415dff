package peerconf

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver maps an optional configuration identifier onto a WireGuard
// peer configuration file path: <dir>/<tunnel>.conf by default,
// <dir>/<tunnel>-<identifier>.conf when an identifier is given.
type Resolver struct {
	directory  string
	tunnelName string
}

func NewResolver(directory, tunnelName string) Resolver {
	return Resolver{
		directory:  directory,
		tunnelName: tunnelName,
	}
}

func (r Resolver) Resolve(identifier string) string {
	if identifier == "" {
		return filepath.Join(r.directory, r.tunnelName+".conf")
	}
	return filepath.Join(r.directory, fmt.Sprintf("%s-%s.conf", r.tunnelName, identifier))
}

// ResolveExisting resolves and verifies the file is present.
func (r Resolver) ResolveExisting(identifier string) (string, error) {
	path := r.Resolve(identifier)
	if _, statErr := os.Stat(path); statErr != nil {
		return "", fmt.Errorf("peer configuration %s: %v", path, statErr)
	}
	return path, nil
}
