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

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "INFO", INFO.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "ERROR", ERROR.String())
	assert.Equal(t, "OFF", OFF.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(WARN, &buf)

	log.Debug("debug message")
	log.Info("info message")
	assert.Empty(t, buf.String())

	log.Warn("warn message")
	log.Error("error message")
	out := buf.String()
	assert.Contains(t, out, "[WARN] warn message")
	assert.Contains(t, out, "[ERROR] error message")
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(ERROR, &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.SetLevel(DEBUG)
	log.Info("visible %d", 1)
	assert.Contains(t, buf.String(), "visible 1")
}

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(OFF, &buf)
	log.Error("never shown")
	assert.Empty(t, buf.String())
}

func TestDiscardLogger(t *testing.T) {
	log := NewDiscardLogger()
	assert.NotPanics(t, func() {
		log.Debug("a")
		log.Info("b")
		log.Warn("c")
		log.Error("d")
		log.SetLevel(DEBUG)
	})
}

func TestDefaultLoggerSwap(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(INFO, &buf))
	Info("through default %s", "logger")
	assert.Contains(t, buf.String(), "through default logger")
}
