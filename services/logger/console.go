package logsvc

import (
	"log"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
)

// ConsoleLogger writes everything to the standard logger. Default in DEV and
// in tests.
type ConsoleLogger struct {
	std     *log.Logger
	enabled bool
	debug   bool
}

var _ core.Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger(std *log.Logger, conf *core.Config) *ConsoleLogger {
	return &ConsoleLogger{std: std, enabled: true, debug: conf.Debug}
}

func (l *ConsoleLogger) Enable(enabled bool) {
	l.enabled = enabled
}

func (l *ConsoleLogger) print(level, msg string, args []interface{}) {
	if !l.enabled {
		return
	}
	l.std.Printf("%s %s", level, msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	if l.debug {
		l.print("DEBUG", msg, args)
	}
}

func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.print("INFO", msg, args)
}

func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.print("WARN", msg, args)
}

func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.print("ERROR", msg, args)
}

func (l *ConsoleLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
