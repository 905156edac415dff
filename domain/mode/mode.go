package mode

type Mode int

const (
	Unknown Mode = iota
	// Up moves physical interfaces into the isolated namespace and raises the tunnel
	Up
	// Down reverses Up and returns the host to its integrated state
	Down
	// Exec runs a command inside the isolated namespace
	Exec
	// Status reports isolation state and tunnel reachability
	Status
	// Keygen generates a WireGuard key pair
	Keygen
)
