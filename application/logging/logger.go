package logging

// Logger is the logging contract consumed by orchestration code.
type Logger interface {
	Printf(format string, v ...any)
}
