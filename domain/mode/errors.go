package mode

import "fmt"

// NoModeProvided is returned when no command was provided when running the app
type NoModeProvided struct {
}

func NewNoModeProvided() NoModeProvided {
	return NoModeProvided{}
}

func (n NoModeProvided) Error() string {
	return "no command provided"
}

type InvalidModeProvided struct {
	mode string
}

func NewInvalidModeProvided(mode string) InvalidModeProvided {
	return InvalidModeProvided{
		mode: mode,
	}
}

func (i InvalidModeProvided) Error() string {
	if i.mode == "" {
		return "empty string is not a valid command"
	}
	return fmt.Sprintf("%s is not a valid command", i.mode)
}

// NoExecCommandProvided is returned when exec was requested without a command to run
type NoExecCommandProvided struct {
}

func NewNoExecCommandProvided() NoExecCommandProvided {
	return NoExecCommandProvided{}
}

func (n NoExecCommandProvided) Error() string {
	return "exec requires a command to run"
}
