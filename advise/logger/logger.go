/*
Package logger defines the logging interface used throughout advise. Consumers of the library may supply their own
implementation via advise.SetLogger.
*/
package logger

// Logger represents the behavior for logging within the advise library.
type Logger interface {
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	Warnf(format string, args ...interface{})
	Warn(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
}
