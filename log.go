package neobadge

import (
	"fmt"
)

type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...any)
	Info(msg string)
	Infof(format string, v ...any)
}

// consoleLogger writes to whatever println is hooked up to, usually the UART or USB-CDC console. Debug output is
// dropped unless verbose is set.
type consoleLogger struct {
	verbose bool
}

func (l consoleLogger) Debug(msg string) {
	if l.verbose {
		println(msg)
	}
}

func (l consoleLogger) Debugf(format string, v ...any) {
	if l.verbose {
		println(fmt.Sprintf(format, v...))
	}
}

func (consoleLogger) Info(msg string) {
	println(msg)
}

func (consoleLogger) Infof(format string, v ...any) {
	println(fmt.Sprintf(format, v...))
}

// ConsoleLogger returns the default Logger. verbose enables Debug output.
func ConsoleLogger(verbose bool) Logger {
	return consoleLogger{verbose: verbose}
}
