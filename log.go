package chartopts

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var pkgLogger atomic.Pointer[log.Logger]

// SetLogger sets the logger used by the package. nil restores log.Default().
func SetLogger(l *log.Logger) { pkgLogger.Store(l) }

// Logger returns the package logger.
func Logger() *log.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return log.Default()
}
