package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggerViper(level, format string) *viper.Viper {
	v := viper.New()
	v.Set("logging.level", level)
	v.Set("logging.format", format)
	return v
}

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		logger, err := NewLogger(loggerViper("info", format))
		require.NoError(t, err, "format %q", format)
		require.NotNil(t, logger)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := NewLogger(loggerViper(level, "json"))
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, logger)
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(loggerViper("banana", "json"))
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := NewLogger(loggerViper("info", "xml"))
	assert.Error(t, err)
}
