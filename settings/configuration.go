package settings

// Configuration describes the isolation layout: which namespace to build,
// which tunnel to raise in the root namespace and which physical
// interfaces to sequester.
type Configuration struct {
	NamespaceName      string   `json:"NamespaceName"`
	TunnelName         string   `json:"TunnelName"`
	TunnelAddress      string   `json:"TunnelAddress"`
	PhysicalInterfaces []string `json:"PhysicalInterfaces"`
	WirelessInterfaces []string `json:"WirelessInterfaces"`
	UpstreamDNS        []string `json:"UpstreamDNS"`
	NamespaceDNS       []string `json:"NamespaceDNS"`

	PeerConfigurationDirectory          string `json:"PeerConfigurationDirectory"`
	WPASupplicantConfigurationDirectory string `json:"WPASupplicantConfigurationDirectory"`

	EnableLeakGuard bool `json:"EnableLeakGuard"`
}

// Default returns the layout used when no configuration file exists.
func Default() Configuration {
	return Configuration{
		NamespaceName:      "physical",
		TunnelName:         "wgvpn0",
		TunnelAddress:      "192.168.4.33/32",
		PhysicalInterfaces: []string{"eth0", "wlan0"},
		WirelessInterfaces: []string{"wlan0"},
		UpstreamDNS: []string{
			"1.1.1.1",
			"1.0.0.1",
			"8.8.8.8",
			"8.8.4.4",
			"9.9.9.9",
		},
		NamespaceDNS:                        []string{"127.0.0.1", "::1"},
		PeerConfigurationDirectory:          "/etc/wireguard",
		WPASupplicantConfigurationDirectory: "/etc/wpa_supplicant",
		EnableLeakGuard:                     false,
	}
}
