package resolvconf

// Contract manages the root-namespace resolver file and the
// namespace-scoped one (/etc/netns/<ns>/resolv.conf), including the
// immutable-attribute protection window.
type Contract interface {
	WriteRoot(servers []string) error
	WriteNamespace(nsName string, servers []string) error
	// Lock write-protects both files so DHCP hook scripts cannot rewrite
	// them while the host is isolated.
	Lock(nsName string) error
	// Unlock removes the protection; missing files are tolerated.
	Unlock(nsName string) error
	// Blank truncates both files to empty.
	Blank(nsName string) error
	Locked(nsName string) (bool, error)
}
