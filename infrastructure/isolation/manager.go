package isolation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"wgns/application"
	"wgns/application/logging"
	"wgns/infrastructure/PAL/linux/ip"
	"wgns/infrastructure/PAL/linux/proc"
	"wgns/infrastructure/PAL/linux/resolvconf"
	"wgns/infrastructure/PAL/linux/wg"
	"wgns/infrastructure/network/netfilter"
	"wgns/infrastructure/network/probe"
	"wgns/settings"
)

// Manager implements application.IsolationController by sequencing
// iproute2/wireguard-tools calls. Up is fail-fast with no rollback; Down
// is the best-effort inverse and tolerates a half-applied Up.
type Manager struct {
	conf    settings.Configuration
	netTool ip.Contract
	tunnel  wg.Contract
	resolv  resolvconf.Contract
	procs   proc.Contract
	guard   netfilter.Contract
	prober  probe.Contract
	logger  logging.Logger

	execve   func(argv0 string, argv []string, envv []string) error
	lookPath func(file string) (string, error)
}

func NewManager(
	conf settings.Configuration,
	netTool ip.Contract,
	tunnel wg.Contract,
	resolv resolvconf.Contract,
	procs proc.Contract,
	guard netfilter.Contract,
	prober probe.Contract,
	logger logging.Logger,
) application.IsolationController {
	return &Manager{
		conf:     conf,
		netTool:  netTool,
		tunnel:   tunnel,
		resolv:   resolv,
		procs:    procs,
		guard:    guard,
		prober:   prober,
		logger:   logger,
		execve:   unix.Exec,
		lookPath: exec.LookPath,
	}
}

func (m *Manager) Up(peerConfPath string) error {
	nsName := m.conf.NamespaceName
	tunName := m.conf.TunnelName

	// conflicting network managers would fight over the interfaces we are
	// about to move; their absence is the normal case
	if err := m.procs.Killall("wpa_supplicant", "dhcpcd", "dnsmasq"); err != nil {
		return err
	}

	if err := m.resolv.Unlock(nsName); err != nil {
		return fmt.Errorf("unlock resolver files: %w", err)
	}
	if err := m.resolv.WriteRoot(m.conf.UpstreamDNS); err != nil {
		return fmt.Errorf("write root resolver file: %w", err)
	}
	if err := m.resolv.WriteNamespace(nsName, m.conf.NamespaceDNS); err != nil {
		return fmt.Errorf("write namespace resolver file: %w", err)
	}
	// locked until down(): DHCP hooks must not rewrite them
	if err := m.resolv.Lock(nsName); err != nil {
		return fmt.Errorf("protect resolver files: %w", err)
	}

	if err := m.netTool.NetnsAdd(nsName); err != nil {
		return err
	}
	if err := m.netTool.NetnsLinkAddWireguard(nsName, tunName); err != nil {
		return err
	}
	if err := m.netTool.NetnsLinkMoveToRoot(nsName, tunName); err != nil {
		return err
	}
	if err := m.tunnel.SetConf(tunName, peerConfPath); err != nil {
		return err
	}
	if err := m.netTool.AddrAddDev(tunName, m.conf.TunnelAddress); err != nil {
		return err
	}

	for _, devName := range m.conf.PhysicalInterfaces {
		if err := m.netTool.LinkSetDevDown(devName); err != nil {
			return err
		}
	}
	if err := m.netTool.NetnsLinkSetDevUp(nsName, "lo"); err != nil {
		return err
	}
	for _, devName := range m.conf.PhysicalInterfaces {
		if err := m.netTool.LinkSetDevNetns(devName, nsName); err != nil {
			return err
		}
	}

	for _, devName := range m.conf.PhysicalInterfaces {
		if err := m.netTool.NetnsExec(nsName, "dhcpcd", "-b", devName); err != nil {
			return err
		}
	}
	for _, devName := range m.conf.WirelessInterfaces {
		confPath := filepath.Join(
			m.conf.WPASupplicantConfigurationDirectory,
			fmt.Sprintf("wpa_supplicant-%s.conf", devName))
		if err := m.netTool.NetnsExec(nsName, "wpa_supplicant", "-B", "-c", confPath, "-i", devName); err != nil {
			return err
		}
	}
	if err := m.netTool.NetnsExec(nsName, "dnsmasq"); err != nil {
		return err
	}

	if err := m.netTool.LinkSetDevUp(tunName); err != nil {
		return err
	}
	if err := m.netTool.RouteAddDefaultDev(tunName); err != nil {
		return err
	}

	if m.conf.EnableLeakGuard {
		if err := m.guard.Enable(tunName); err != nil {
			return err
		}
	}

	m.logger.Printf("isolated: %v held in namespace %s, default route via %s",
		m.conf.PhysicalInterfaces, nsName, tunName)
	return nil
}

func (m *Manager) Down() error {
	nsName := m.conf.NamespaceName
	tunName := m.conf.TunnelName

	// every step below that can only fail because up() never got that far
	// is logged and skipped instead of aborting the teardown
	pids, pidsErr := m.netTool.NetnsPids(nsName)
	if pidsErr != nil {
		m.logger.Printf("skipping namespace process termination: %s", pidsErr)
	} else if killErr := m.procs.Kill(pids); killErr != nil {
		return killErr
	}

	if m.conf.EnableLeakGuard {
		if guardErr := m.guard.Disable(); guardErr != nil {
			m.logger.Printf("failed to remove leak guard: %s", guardErr)
		}
	}

	if err := m.resolv.Unlock(nsName); err != nil {
		return fmt.Errorf("unprotect resolver files: %w", err)
	}
	if err := m.resolv.Blank(nsName); err != nil {
		return fmt.Errorf("blank resolver files: %w", err)
	}

	for _, devName := range m.conf.PhysicalInterfaces {
		if err := m.netTool.NetnsLinkSetDevDown(nsName, devName); err != nil {
			m.logger.Printf("skipping %s: %s", devName, err)
			continue
		}
		if err := m.netTool.NetnsLinkMoveToRoot(nsName, devName); err != nil {
			return err
		}
	}

	if m.netTool.LinkExists(tunName) {
		if err := m.netTool.LinkDelete(tunName); err != nil {
			return err
		}
	}

	if err := m.netTool.NetnsDelete(nsName); err != nil {
		return err
	}

	m.logger.Printf("integrated: namespace %s removed, host network unconfigured", nsName)
	return nil
}

func (m *Manager) Exec(argv []string) error {
	if len(argv) == 0 {
		return errors.New("no command provided")
	}

	nsNames, listErr := m.netTool.NetnsList()
	if listErr != nil {
		return listErr
	}
	if !slices.Contains(nsNames, m.conf.NamespaceName) {
		return fmt.Errorf("namespace %s does not exist, run up first", m.conf.NamespaceName)
	}

	ipPath, lookErr := m.lookPath("ip")
	if lookErr != nil {
		return fmt.Errorf("ip not found in PATH: %v", lookErr)
	}

	uid, gid := invokerIdentity()
	full := append([]string{
		"ip", "netns", "exec", m.conf.NamespaceName,
		"sudo", "-E", "-u", "#" + strconv.Itoa(uid), "-g", "#" + strconv.Itoa(gid), "--",
	}, argv...)

	// replaces the current process; only returns on error
	return m.execve(ipPath, full, os.Environ())
}

func (m *Manager) Status(ctx context.Context) (application.StatusReport, error) {
	report := application.StatusReport{}

	nsNames, listErr := m.netTool.NetnsList()
	if listErr != nil {
		return report, listErr
	}
	report.NamespacePresent = slices.Contains(nsNames, m.conf.NamespaceName)

	report.TunnelPresent = m.netTool.LinkExists(m.conf.TunnelName)
	if report.TunnelPresent {
		if addr, addrErr := m.netTool.AddrShowDev(4, m.conf.TunnelName); addrErr == nil {
			report.TunnelAddress = addr
		}
	}

	locked, lockedErr := m.resolv.Locked(m.conf.NamespaceName)
	report.ResolverLocked = lockedErr == nil && locked

	if report.NamespacePresent && report.TunnelPresent {
		if via, probeErr := m.prober.Reachable(ctx, ipv4Only(m.conf.UpstreamDNS)); probeErr == nil {
			report.ReachableVia = via
		} else {
			m.logger.Printf("tunnel probe: %s", probeErr)
		}
	}

	return report, nil
}

// invokerIdentity captures the pre-escalation identity from the sudo
// environment, falling back to the current one.
func invokerIdentity() (int, int) {
	uid := os.Getuid()
	gid := os.Getgid()
	if v, err := strconv.Atoi(os.Getenv("SUDO_UID")); err == nil {
		uid = v
	}
	if v, err := strconv.Atoi(os.Getenv("SUDO_GID")); err == nil {
		gid = v
	}
	return uid, gid
}

// the prober speaks IPv4 only; loopback entries like ::1 are for the
// namespace-scoped resolver file, not for probing
func ipv4Only(addrs []string) []string {
	var out []string
	for _, addr := range addrs {
		if !strings.Contains(addr, ":") {
			out = append(out, addr)
		}
	}
	return out
}
