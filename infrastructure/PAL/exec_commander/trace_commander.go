package exec_commander

import (
	"strings"

	"wgns/application/logging"
	"wgns/infrastructure/PAL"
)

// TraceCommander logs every command before delegating, so a failing step
// is attributable to the exact command that ran.
type TraceCommander struct {
	inner  PAL.Commander
	logger logging.Logger
}

func NewTraceCommander(inner PAL.Commander, logger logging.Logger) PAL.Commander {
	return &TraceCommander{inner: inner, logger: logger}
}

func (c *TraceCommander) CombinedOutput(name string, args ...string) ([]byte, error) {
	c.trace(name, args)
	return c.inner.CombinedOutput(name, args...)
}

func (c *TraceCommander) Output(name string, args ...string) ([]byte, error) {
	c.trace(name, args)
	return c.inner.Output(name, args...)
}

func (c *TraceCommander) Run(name string, args ...string) error {
	c.trace(name, args)
	return c.inner.Run(name, args...)
}

func (c *TraceCommander) trace(name string, args []string) {
	c.logger.Printf("+ %s %s", name, strings.Join(args, " "))
}
