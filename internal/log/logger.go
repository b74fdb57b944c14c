// Package log is the logging facade used across the tools. The only
// implementation is backed by logrus.
package log

// Logger defines the logging calls the rest of the code base makes.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	// WithField returns a logger that appends key=value to every line.
	WithField(key string, value interface{}) Logger
}
