package ip

type Contract interface {
	NetnsAdd(nsName string) error
	NetnsDelete(nsName string) error
	NetnsList() ([]string, error)
	NetnsPids(nsName string) ([]int, error)
	NetnsExec(nsName string, name string, args ...string) error
	NetnsLinkAddWireguard(nsName, devName string) error
	NetnsLinkMoveToRoot(nsName, devName string) error
	NetnsLinkSetDevUp(nsName, devName string) error
	NetnsLinkSetDevDown(nsName, devName string) error
	LinkSetDevUp(devName string) error
	LinkSetDevDown(devName string) error
	LinkSetDevNetns(devName, nsName string) error
	LinkDelete(devName string) error
	LinkExists(devName string) bool
	AddrAddDev(devName string, ip string) error
	AddrShowDev(ipV int, ifName string) (string, error)
	RouteAddDefaultDev(devName string) error
}
