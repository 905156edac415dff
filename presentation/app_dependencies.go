package presentation

import (
	"fmt"

	"wgns/application"
	"wgns/infrastructure/PAL/exec_commander"
	"wgns/infrastructure/PAL/linux/fsattr"
	"wgns/infrastructure/PAL/linux/ip"
	"wgns/infrastructure/PAL/linux/proc"
	"wgns/infrastructure/PAL/linux/resolvconf"
	"wgns/infrastructure/PAL/linux/wg"
	"wgns/infrastructure/isolation"
	"wgns/infrastructure/logging"
	"wgns/infrastructure/network/netfilter"
	"wgns/infrastructure/network/probe"
	"wgns/presentation/configuration_selection"
	"wgns/settings"
	"wgns/settings/peerconf"
)

type AppDependencies interface {
	Initialize() error
	Configuration() settings.Configuration
	Controller() application.IsolationController
	PeerSelection() *configuration_selection.PeerSelection
}

type Dependencies struct {
	reader     settings.Reader
	conf       settings.Configuration
	controller application.IsolationController
	selection  *configuration_selection.PeerSelection
}

func NewDependencies(reader settings.Reader) AppDependencies {
	return &Dependencies{reader: reader}
}

func (d *Dependencies) Initialize() error {
	conf, confErr := d.reader.Configuration()
	if confErr != nil {
		return fmt.Errorf("failed to read configuration: %w", confErr)
	}

	logger := logging.NewLogLogger()
	commander := exec_commander.NewTraceCommander(exec_commander.NewExecCommander(), logger)

	guard, guardErr := netfilter.NewLeakGuard()
	if guardErr != nil {
		return fmt.Errorf("failed to initialize leak guard: %w", guardErr)
	}

	d.controller = isolation.NewManager(
		conf,
		ip.NewWrapper(commander),
		wg.NewWrapper(commander),
		resolvconf.NewWriter(fsattr.NewWrapper(fsattr.NewLinuxIoctlCommander())),
		proc.NewWrapper(commander),
		guard,
		probe.NewICMPProber(),
		logger,
	)

	peerResolver := peerconf.NewResolver(conf.PeerConfigurationDirectory, conf.TunnelName)
	d.selection = configuration_selection.NewPeerSelection(peerconf.NewDefaultObserver(peerResolver), peerResolver)

	d.conf = conf
	return nil
}

func (d *Dependencies) Configuration() settings.Configuration {
	return d.conf
}

func (d *Dependencies) Controller() application.IsolationController {
	return d.controller
}

func (d *Dependencies) PeerSelection() *configuration_selection.PeerSelection {
	return d.selection
}
