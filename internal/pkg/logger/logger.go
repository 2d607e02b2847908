package logger

// Logger defines the logging interface.
//
// Calls of the form Info("message", "key", value, ...) are emitted as structured
// attributes; any other argument list is concatenated like fmt.Sprint.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
