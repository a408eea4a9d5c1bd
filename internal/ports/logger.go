package ports

// Logger is the printf-style logging surface the app layer needs.
// runtime.Logger satisfies it.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
