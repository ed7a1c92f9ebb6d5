// Package logging hands out scoped leveled loggers for this module.
package logging

import (
	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a leveled logger for the given scope. Verbosity follows
// pion/logging's defaults, so PION_LOG_DEBUG=detectv4l turns on debug output.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}
