package netfilter

type Contract interface {
	// Enable installs an output filter in the root namespace that drops
	// anything not leaving via loopback or the tunnel device.
	Enable(tunName string) error
	// Disable removes the filter; an absent filter is tolerated.
	Disable() error
}
