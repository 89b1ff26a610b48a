package log

import (
	"os"
	"sync"

	linfitErrors "github.com/YuminosukeSato/linfit/pkg/errors"
)

var (
	providerMu sync.RWMutex
	provider   LoggerProvider
)

func init() {
	SetProvider(NewZerologProvider(os.Stderr, LevelWarn))
}

// SetProvider installs p as the global provider and routes library warnings
// (errors.Warn) to it.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	provider = p
	providerMu.Unlock()

	linfitErrors.SetZerologWarnFunc(func(w error) {
		p.GetLoggerWithName("warnings").Warn(w.Error(), w)
	})
}

// GetProvider returns the installed provider.
func GetProvider() LoggerProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider
}

// GetLogger returns the default logger of the installed provider.
func GetLogger() Logger {
	return GetProvider().GetLogger()
}

// GetLoggerWithName returns a logger tagged with the component name.
func GetLoggerWithName(name string) Logger {
	return GetProvider().GetLoggerWithName(name)
}

// SetLevel changes the minimum level of loggers created from now on.
func SetLevel(level Level) {
	GetProvider().SetLevel(level)
}
