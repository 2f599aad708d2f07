package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	os.Unsetenv(LOG_ENABLE)
	defaultLevel = INFO_LOGGING
	assert.Equal(t, INFO_LOGGING, LogLevel())

	SetQuiet(true)
	assert.Equal(t, ERROR_LOGGING, LogLevel())

	t.Setenv(LOG_ENABLE, "10")
	assert.Equal(t, DEBUG_LOGGING, LogLevel())

	defaultLevel = INFO_LOGGING
}

func TestGetLogLevelNames(t *testing.T) {
	assert.Equal(t, "DEBUG", getLogLevel(DEBUG_LOGGING))
	assert.Equal(t, "INFO", getLogLevel(INFO_LOGGING))
	assert.Equal(t, "WARNING", getLogLevel(WARNING_LOGGING))
	assert.Equal(t, "ERROR", getLogLevel(ERROR_LOGGING))
}
