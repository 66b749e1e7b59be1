package app

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig(viper.New())
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, types.DefaultMaxAnyDepth, cfg.MaxAnyDepth)
}

func TestReadConfig(t *testing.T) {
	v := viper.New()
	v.Set(FlagLogLevel, "debug")
	v.Set(FlagLogFormat, LogFormatJSON)
	v.Set(FlagMaxAnyDepth, "2")
	v.Set(FlagAPIAddress, "0.0.0.0:9000")

	cfg, err := ReadConfig(v)
	require.NoError(t, err)
	require.Equal(t, Config{
		LogLevel:    "debug",
		LogFormat:   LogFormatJSON,
		MaxAnyDepth: 2,
		APIAddress:  "0.0.0.0:9000",
	}, cfg)
}

func TestReadConfigInvalid(t *testing.T) {
	for key, value := range map[string]any{
		FlagLogLevel:    "loud",
		FlagLogFormat:   "xml",
		FlagMaxAnyDepth: "deep",
	} {
		v := viper.New()
		v.Set(key, value)
		_, err := ReadConfig(v)
		require.ErrorContains(t, err, key)
	}

	v := viper.New()
	v.Set(FlagMaxAnyDepth, 0)
	_, err := ReadConfig(v)
	require.ErrorContains(t, err, "must be positive")
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFormat = LogFormatJSON

	buf := new(bytes.Buffer)
	logger, err := NewLogger(cfg, buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"message":"shown"`)
	require.Contains(t, buf.String(), `"key":"value"`)

	cfg.LogLevel = "loud"
	_, err = NewLogger(cfg, buf)
	require.Error(t, err)
}
