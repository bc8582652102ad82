package renderer

import "github.com/golang/glog"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// glogLogger implements Logger on top of glog's INFO level
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

// NewGlogLogger creates the default logger
func NewGlogLogger() Logger {
	return glogLogger{}
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
