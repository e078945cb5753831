package logger

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Logger is a subsystem logger. It is safe for concurrent use; the level may
// be changed while other goroutines are writing.
type Logger struct {
	level     uint32 // accessed atomically, holds a Level
	tag       string
	writeChan chan<- logEntry
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

func (l *Logger) print(level Level, args ...interface{}) {
	if level < l.Level() {
		return
	}
	l.write(level, fmt.Sprint(args...))
}

func (l *Logger) printf(level Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	l.write(level, fmt.Sprintf(format, args...))
}

func (l *Logger) write(level Level, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	entry := fmt.Sprintf("%s [%s] %s: %s\n", timestamp, level, l.tag, message)
	l.writeChan <- logEntry{log: []byte(entry), level: level}
}

// Trace logs at the trace level.
func (l *Logger) Trace(args ...interface{}) { l.print(LevelTrace, args...) }

// Tracef logs a formatted message at the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.printf(LevelTrace, format, args...) }

// Debug logs at the debug level.
func (l *Logger) Debug(args ...interface{}) { l.print(LevelDebug, args...) }

// Debugf logs a formatted message at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.printf(LevelDebug, format, args...) }

// Info logs at the info level.
func (l *Logger) Info(args ...interface{}) { l.print(LevelInfo, args...) }

// Infof logs a formatted message at the info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.printf(LevelInfo, format, args...) }

// Warn logs at the warn level.
func (l *Logger) Warn(args ...interface{}) { l.print(LevelWarn, args...) }

// Warnf logs a formatted message at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.printf(LevelWarn, format, args...) }

// Error logs at the error level.
func (l *Logger) Error(args ...interface{}) { l.print(LevelError, args...) }

// Errorf logs a formatted message at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.printf(LevelError, format, args...) }

// Critical logs at the critical level.
func (l *Logger) Critical(args ...interface{}) { l.print(LevelCritical, args...) }

// Criticalf logs a formatted message at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}
