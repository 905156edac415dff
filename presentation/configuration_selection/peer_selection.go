package configuration_selection

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"wgns/presentation/bubble_tea"
	"wgns/settings/peerconf"
)

// PeerSelection maps the optional up-command identifier onto a concrete
// peer configuration path. With an identifier the suffixed file is used;
// without one the default file wins, and only when it is absent does the
// user get prompted to choose among the suffixed alternatives.
type PeerSelection struct {
	observer peerconf.Observer
	resolver peerconf.Resolver
	prompt   func(options []string) (string, error)
}

func NewPeerSelection(observer peerconf.Observer, resolver peerconf.Resolver) *PeerSelection {
	return &PeerSelection{
		observer: observer,
		resolver: resolver,
		prompt:   promptForConfiguration,
	}
}

func (p *PeerSelection) SelectPath(identifier string) (string, error) {
	if identifier != "" {
		return p.resolver.ResolveExisting(identifier)
	}

	if path, err := p.resolver.ResolveExisting(""); err == nil {
		return path, nil
	}

	identifiers, observeErr := p.observer.Observe()
	if observeErr != nil {
		return "", observeErr
	}

	switch len(identifiers) {
	case 0:
		return "", fmt.Errorf("no peer configuration found at %s", p.resolver.Resolve(""))
	case 1:
		return p.resolver.ResolveExisting(identifiers[0])
	default:
		chosen, promptErr := p.prompt(identifiers)
		if promptErr != nil {
			return "", promptErr
		}
		return p.resolver.ResolveExisting(chosen)
	}
}

func promptForConfiguration(options []string) (string, error) {
	selector := bubble_tea.NewSelector("Select peer configuration:", options)
	model, runErr := tea.NewProgram(selector).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := model.(bubble_tea.Selector)
	if !ok || result.Choice() == "" {
		return "", errors.New("no peer configuration selected")
	}
	return result.Choice(), nil
}
