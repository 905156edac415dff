package settings

import (
	"os"
	"path/filepath"
)

// Resolver resolves the path to the tool configuration file.
type Resolver interface {
	Resolve() (string, error)
}

type DefaultResolver struct {
}

func NewDefaultResolver() Resolver {
	return DefaultResolver{}
}

func (r DefaultResolver) Resolve() (string, error) {
	return filepath.Join(string(os.PathSeparator), "etc", "wgns", "configuration.json"), nil
}
