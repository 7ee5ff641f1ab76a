package core

// Logger interface for render progress reporting
type Logger interface {
	Printf(format string, args ...interface{})
}
