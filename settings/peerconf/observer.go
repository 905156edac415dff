package peerconf

import (
	"path/filepath"
	"strings"
)

// Observer is used to observe available peer configuration identifiers
type Observer interface {
	Observe() ([]string, error)
}

type DefaultObserver struct {
	resolver Resolver
}

func NewDefaultObserver(resolver Resolver) Observer {
	return &DefaultObserver{
		resolver: resolver,
	}
}

// Observe lists the identifiers of all <tunnel>-*.conf files next to the
// default configuration.
func (o *DefaultObserver) Observe() ([]string, error) {
	defaultPath := o.resolver.Resolve("")
	dir := filepath.Dir(defaultPath)
	base := strings.TrimSuffix(filepath.Base(defaultPath), ".conf")

	matches, err := filepath.Glob(filepath.Join(dir, base+"-*.conf"))
	if err != nil {
		return nil, err
	}

	var identifiers []string
	for _, match := range matches {
		name := strings.TrimSuffix(filepath.Base(match), ".conf")
		identifiers = append(identifiers, strings.TrimPrefix(name, base+"-"))
	}

	return identifiers, nil
}
