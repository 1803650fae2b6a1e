/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides leveled logging for the arrayagg engine with a
// pluggable backend.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Level controls which messages a Logger emits.
type Level int

const (
	// DEBUG emits everything including per-row diagnostics.
	DEBUG Level = iota
	// INFO emits lifecycle and progress messages.
	INFO
	// WARN emits recoverable problems, e.g. dropped records.
	WARN
	// ERROR emits failures only.
	ERROR
	// OFF disables all output.
	OFF
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging backend interface. Implementations must be safe
// for concurrent use.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	SetLevel(level Level)
}

type defaultLogger struct {
	level  Level
	logger *log.Logger
}

// NewLogger creates a logger writing formatted lines to output.
//
// Example:
//
//	log := logger.NewLogger(logger.INFO, os.Stdout)
//	log.Info("pipeline started")
func NewLogger(level Level, output io.Writer) Logger {
	// Custom line format, skip the stdlib prefix entirely.
	return &defaultLogger{
		level:  level,
		logger: log.New(output, "", 0),
	}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.emit(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.emit(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.emit(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.emit(ERROR, format, args...)
}

func (l *defaultLogger) SetLevel(level Level) {
	l.level = level
}

func (l *defaultLogger) emit(level Level, format string, args ...interface{}) {
	if l.level == OFF || level < l.level {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] %s", timestamp, level.String(), fmt.Sprintf(format, args...))
}

// discardLogger swallows all output.
type discardLogger struct{}

// NewDiscardLogger returns a logger that drops everything, for callers
// that want no log output at all.
func NewDiscardLogger() Logger {
	return &discardLogger{}
}

func (d *discardLogger) Debug(format string, args ...interface{}) {}
func (d *discardLogger) Info(format string, args ...interface{})  {}
func (d *discardLogger) Warn(format string, args ...interface{})  {}
func (d *discardLogger) Error(format string, args ...interface{}) {}
func (d *discardLogger) SetLevel(level Level)                     {}

var defaultInstance Logger = NewLogger(INFO, os.Stdout)

// SetDefault replaces the package-level logger.
func SetDefault(logger Logger) {
	defaultInstance = logger
}

// GetDefault returns the package-level logger.
func GetDefault() Logger {
	return defaultInstance
}

// Package-level convenience helpers.

func Debug(format string, args ...interface{}) {
	defaultInstance.Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	defaultInstance.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	defaultInstance.Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	defaultInstance.Error(format, args...)
}
