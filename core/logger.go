package core

// Logger is the app-wide logging contract. Implementations live in
// services/logger; consumers only ever see this interface.
//
// args may carry any extra context; implementations decide how to render it.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
