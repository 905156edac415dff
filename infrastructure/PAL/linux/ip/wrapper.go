package ip

import (
	"fmt"
	"strconv"
	"strings"

	"wgns/infrastructure/PAL"
)

// Wrapper is a wrapper around the ip command from the iproute2 tool collection
type Wrapper struct {
	commander PAL.Commander
}

func NewWrapper(commander PAL.Commander) Contract {
	return &Wrapper{commander: commander}
}

// NetnsAdd creates a named network namespace
func (i *Wrapper) NetnsAdd(nsName string) error {
	output, err := i.commander.CombinedOutput("ip", "netns", "add", nsName)
	if err != nil {
		return fmt.Errorf("failed to create namespace %v: %v, output: %s", nsName, err, output)
	}

	return nil
}

// NetnsDelete removes a named network namespace
func (i *Wrapper) NetnsDelete(nsName string) error {
	output, err := i.commander.CombinedOutput("ip", "netns", "del", nsName)
	if err != nil {
		return fmt.Errorf("failed to delete namespace %v: %v, output: %s", nsName, err, output)
	}

	return nil
}

// NetnsList returns the names of existing network namespaces
func (i *Wrapper) NetnsList() ([]string, error) {
	out, err := i.commander.Output("ip", "netns", "list")
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %v", err)
	}

	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			names = append(names, fields[0])
		}
	}
	return names, nil
}

// NetnsPids returns pids of processes running inside a namespace
func (i *Wrapper) NetnsPids(nsName string) ([]int, error) {
	out, err := i.commander.Output("ip", "netns", "pids", nsName)
	if err != nil {
		return nil, fmt.Errorf("failed to list pids in namespace %v: %v", nsName, err)
	}

	var pids []int
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pid, convErr := strconv.Atoi(line)
		if convErr != nil {
			return nil, fmt.Errorf("unexpected pid %q in namespace %v", line, nsName)
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

// NetnsExec runs a command inside a namespace and waits for it to finish
func (i *Wrapper) NetnsExec(nsName string, name string, args ...string) error {
	cmdArgs := append([]string{"netns", "exec", nsName, name}, args...)
	output, err := i.commander.CombinedOutput("ip", cmdArgs...)
	if err != nil {
		return fmt.Errorf("failed to run %v in namespace %v: %v, output: %s", name, nsName, err, output)
	}

	return nil
}

// NetnsLinkAddWireguard creates a WireGuard device inside a namespace.
// The device must be born there: the kernel driver anchors its UDP socket
// in the birth namespace, and only a later move out leaves the socket behind.
func (i *Wrapper) NetnsLinkAddWireguard(nsName, devName string) error {
	output, err := i.commander.CombinedOutput("ip", "-n", nsName, "link", "add", devName, "type", "wireguard")
	if err != nil {
		return fmt.Errorf("failed to create WireGuard device %v in namespace %v: %v, output: %s", devName, nsName, err, output)
	}

	return nil
}

// NetnsLinkMoveToRoot moves a device from a namespace to the root namespace
func (i *Wrapper) NetnsLinkMoveToRoot(nsName, devName string) error {
	output, err := i.commander.CombinedOutput("ip", "-n", nsName, "link", "set", devName, "netns", "1")
	if err != nil {
		return fmt.Errorf("failed to move %v out of namespace %v: %v, output: %s", devName, nsName, err, output)
	}

	return nil
}

// NetnsLinkSetDevUp sets a device inside a namespace UP
func (i *Wrapper) NetnsLinkSetDevUp(nsName, devName string) error {
	output, err := i.commander.CombinedOutput("ip", "-n", nsName, "link", "set", devName, "up")
	if err != nil {
		return fmt.Errorf("failed to bring up %v in namespace %v: %v, output: %s", devName, nsName, err, output)
	}

	return nil
}

// NetnsLinkSetDevDown sets a device inside a namespace DOWN
func (i *Wrapper) NetnsLinkSetDevDown(nsName, devName string) error {
	output, err := i.commander.CombinedOutput("ip", "-n", nsName, "link", "set", devName, "down")
	if err != nil {
		return fmt.Errorf("failed to bring down %v in namespace %v: %v, output: %s", devName, nsName, err, output)
	}

	return nil
}

// LinkSetDevUp sets network device status as UP
func (i *Wrapper) LinkSetDevUp(devName string) error {
	output, err := i.commander.CombinedOutput("ip", "link", "set", devName, "up")
	if err != nil {
		return fmt.Errorf("failed to bring up %v: %v, output: %s", devName, err, output)
	}

	return nil
}

// LinkSetDevDown sets network device status as DOWN
func (i *Wrapper) LinkSetDevDown(devName string) error {
	output, err := i.commander.CombinedOutput("ip", "link", "set", devName, "down")
	if err != nil {
		return fmt.Errorf("failed to bring down %v: %v, output: %s", devName, err, output)
	}

	return nil
}

// LinkSetDevNetns moves a root-namespace device into a namespace
func (i *Wrapper) LinkSetDevNetns(devName, nsName string) error {
	output, err := i.commander.CombinedOutput("ip", "link", "set", devName, "netns", nsName)
	if err != nil {
		return fmt.Errorf("failed to move %v into namespace %v: %v, output: %s", devName, nsName, err, output)
	}

	return nil
}

// LinkDelete deletes network device by name
func (i *Wrapper) LinkDelete(devName string) error {
	output, err := i.commander.CombinedOutput("ip", "link", "delete", devName)
	if err != nil {
		return fmt.Errorf("failed to delete interface: %v, output: %s", err, output)
	}

	return nil
}

// LinkExists reports whether a device exists in the root namespace
func (i *Wrapper) LinkExists(devName string) bool {
	_, err := i.commander.Output("ip", "link", "show", "dev", devName)
	return err == nil
}

// AddrAddDev assigns an IP to a network device
func (i *Wrapper) AddrAddDev(devName string, ip string) error {
	output, assignIPErr := i.commander.CombinedOutput("ip", "addr", "add", ip, "dev", devName)
	if assignIPErr != nil {
		return fmt.Errorf("failed to assign IP to %v: %v, output: %s", devName, assignIPErr, output)
	}

	return nil
}

// AddrShowDev resolves an IP address (IPv4 or IPv6) assigned to interface
func (i *Wrapper) AddrShowDev(ipV int, ifName string) (string, error) {
	output, err := i.commander.CombinedOutput("sh", "-c", fmt.Sprintf(
		`ip -%v -o addr show dev %v | awk '{print $4}' | cut -d'/' -f1`, ipV, ifName))
	if err != nil {
		return "", fmt.Errorf(
			"failed to get IP for interface %s: %v (%s)", ifName, err, strings.TrimSpace(string(output)))
	}

	ip := strings.TrimSpace(string(output))
	if ip == "" {
		return "", fmt.Errorf("no IP address found for interface %s", ifName)
	}

	return ip, nil
}

// RouteAddDefaultDev sets a default network device
func (i *Wrapper) RouteAddDefaultDev(devName string) error {
	output, err := i.commander.CombinedOutput("ip", "route", "add", "default", "dev", devName)
	if err != nil {
		return fmt.Errorf("failed to set %v as default gateway: %v, output: %s", devName, err, output)
	}

	return nil
}
