package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

// Reader loads the tool configuration, falling back to Default when no
// configuration file exists.
type Reader interface {
	Configuration() (Configuration, error)
}

type DefaultReader struct {
	resolver Resolver
}

func NewDefaultReader(resolver Resolver) Reader {
	return &DefaultReader{
		resolver: resolver,
	}
}

func (r *DefaultReader) Configuration() (Configuration, error) {
	path, pathErr := r.resolver.Resolve()
	if pathErr != nil {
		return Configuration{}, pathErr
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return Default(), nil
		}
		return Configuration{}, fmt.Errorf("failed to read configuration %s: %v", path, readErr)
	}

	// file fields override defaults, absent fields keep them
	configuration := Default()
	if unmarshalErr := json.Unmarshal(content, &configuration); unmarshalErr != nil {
		return Configuration{}, fmt.Errorf("failed to parse configuration %s: %v", path, unmarshalErr)
	}

	return configuration, nil
}
