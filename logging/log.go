package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	red     = color.New(color.FgRed).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
	white   = color.New(color.FgHiWhite).SprintFunc()
)

type LogLevel int

const (
	LogLevelError   LogLevel = 0
	LogLevelWarning LogLevel = 1
	LogLevelInfo    LogLevel = 2
	LogLevelDebug   LogLevel = 3
)

var logLevel = LogLevelInfo // the default

func SetLogLevel(newLevel LogLevel) {
	logLevel = newLevel
}

// ParseLevel maps a config string onto a LogLevel. Unknown names fall back to info.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarning
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

func Enabled(level LogLevel) bool {
	return logLevel >= level
}

func SetLogFile(logFile io.Writer) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	logOutput := io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(logOutput)
}

// SetOutput replaces the log destination and disables colors, which is what
// tests and non-terminal sinks want.
func SetOutput(w io.Writer) {
	color.NoColor = true
	log.SetOutput(w)
}

func getPrefix(level string) string {
	return fmt.Sprintf("[%s]", level)
}

func Fatalf(format string, args ...interface{}) {
	log.Fatalf(red(getPrefix("FATAL"))+" "+format, args...)
}

func Debugf(format string, args ...interface{}) {
	if logLevel >= LogLevelDebug {
		log.Printf(cyan(getPrefix("DEBUG"))+" "+format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if logLevel >= LogLevelInfo {
		log.Printf(white(getPrefix("INFO"))+" "+format, args...)
	}
}

// Successf prints in green, for events like a node becoming reachable.
func Successf(format string, args ...interface{}) {
	if logLevel >= LogLevelInfo {
		log.Printf(green(getPrefix("SUCCESS"))+" "+format, args...)
	}
}

// Noticef prints in magenta, for noteworthy events like a new best block.
func Noticef(format string, args ...interface{}) {
	if logLevel >= LogLevelInfo {
		log.Printf(magenta(getPrefix("NOTICE"))+" "+format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if logLevel >= LogLevelWarning {
		log.Printf(yellow(getPrefix("WARN"))+" "+format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if logLevel >= LogLevelError {
		log.Printf(red(getPrefix("ERROR"))+" "+format, args...)
	}
}

func Infoln(args ...interface{}) {
	if logLevel >= LogLevelInfo {
		log.Println(append([]interface{}{white(getPrefix("INFO"))}, args...)...)
	}
}

func Warnln(args ...interface{}) {
	if logLevel >= LogLevelWarning {
		log.Println(append([]interface{}{yellow(getPrefix("WARN"))}, args...)...)
	}
}
