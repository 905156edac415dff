package wg

import (
	"fmt"

	"wgns/infrastructure/PAL"
)

// Wrapper is a wrapper around the wg command from wireguard-tools
type Wrapper struct {
	commander PAL.Commander
}

func NewWrapper(commander PAL.Commander) Contract {
	return &Wrapper{commander: commander}
}

// SetConf applies peer/key configuration from a file to a WireGuard device
func (w *Wrapper) SetConf(devName string, confPath string) error {
	output, err := w.commander.CombinedOutput("wg", "setconf", devName, confPath)
	if err != nil {
		return fmt.Errorf("failed to configure %v from %v: %v, output: %s", devName, confPath, err, output)
	}

	return nil
}

// Show returns the current device configuration and peer state
func (w *Wrapper) Show(devName string) (string, error) {
	output, err := w.commander.Output("wg", "show", devName)
	if err != nil {
		return "", fmt.Errorf("failed to show %v: %v", devName, err)
	}

	return string(output), nil
}
