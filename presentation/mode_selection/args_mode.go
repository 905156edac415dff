package mode_selection

import "wgns/domain/mode"

// ArgsAppMode derives the application mode from command-line arguments.
type ArgsAppMode struct {
	args []string
}

func NewArgsAppMode(args []string) ArgsAppMode {
	return ArgsAppMode{args: args}
}

func (a ArgsAppMode) Mode() (mode.Mode, error) {
	if len(a.args) < 2 {
		return mode.Unknown, mode.NewNoModeProvided()
	}

	switch a.args[1] {
	case "up":
		return mode.Up, nil
	case "down":
		return mode.Down, nil
	case "exec":
		if len(a.args) < 3 {
			return mode.Unknown, mode.NewNoExecCommandProvided()
		}
		return mode.Exec, nil
	case "status":
		return mode.Status, nil
	case "keygen":
		return mode.Keygen, nil
	default:
		return mode.Unknown, mode.NewInvalidModeProvided(a.args[1])
	}
}
