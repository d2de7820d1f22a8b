package trepw

import (
	"github.com/hhkbp2/go-logging"
)

// LoggerName is the go-logging logger used by this package.
const LoggerName = "trepw"

var logger = logging.GetLogger(LoggerName)

// SetLogLevel sets the level of the package logger from one of
// DEBUG, INFO, WARN, ERROR, CRITICAL.
func SetLogLevel(level string) {
	switch level {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	default:
		panic(level)
	}
}
