/*
Package log contains the singleton object and helper functions for facilitating logging within the advise library.
*/
package log

import "github.com/advise-tools/advise/advise/logger"

// Log is the singleton used to facilitate logging internally within advise
var Log logger.Logger = &nopLogger{}

// Set replaces the singleton logger. A nil logger disables logging.
func Set(l logger.Logger) {
	if l == nil {
		l = &nopLogger{}
	}
	Log = l
}

type nester interface {
	Nested(key string, value interface{}) logger.Logger
}

// Nested returns a logger that attaches the given key-value pair to every entry. Loggers that cannot carry fields
// are returned unchanged.
func Nested(key string, value interface{}) logger.Logger {
	if n, ok := Log.(nester); ok {
		return n.Nested(key, value)
	}
	return Log
}

// Errorf takes a formatted template string and template arguments for the error logging level.
func Errorf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
}

// Error logs the given arguments at the error logging level.
func Error(args ...interface{}) {
	Log.Error(args...)
}

// Warnf takes a formatted template string and template arguments for the warning logging level.
func Warnf(format string, args ...interface{}) {
	Log.Warnf(format, args...)
}

// Warn logs the given arguments at the warning logging level.
func Warn(args ...interface{}) {
	Log.Warn(args...)
}

// Infof takes a formatted template string and template arguments for the info logging level.
func Infof(format string, args ...interface{}) {
	Log.Infof(format, args...)
}

// Info logs the given arguments at the info logging level.
func Info(args ...interface{}) {
	Log.Info(args...)
}

// Debugf takes a formatted template string and template arguments for the debug logging level.
func Debugf(format string, args ...interface{}) {
	Log.Debugf(format, args...)
}

// Debug logs the given arguments at the debug logging level.
func Debug(args ...interface{}) {
	Log.Debug(args...)
}
