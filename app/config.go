package app

import (
	"fmt"
	"io"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// Configuration keys, as they appear in config.toml. Environment variables
// use EnvPrefix and underscores, e.g. TSCSCAN_DECODER_MAX_ANY_DEPTH.
const (
	FlagLogLevel    = "log.level"
	FlagLogFormat   = "log.format"
	FlagMaxAnyDepth = "decoder.max-any-depth"
	FlagAPIAddress  = "api.address"

	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

type Config struct {
	LogLevel    string
	LogFormat   string
	MaxAnyDepth int
	APIAddress  string
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    zerolog.InfoLevel.String(),
		LogFormat:   LogFormatPlain,
		MaxAnyDepth: types.DefaultMaxAnyDepth,
		APIAddress:  "127.0.0.1:8088",
	}
}

// Defaults returns DefaultConfig keyed by configuration key, for seeding a
// viper instance.
func Defaults() map[string]any {
	cfg := DefaultConfig()
	return map[string]any{
		FlagLogLevel:    cfg.LogLevel,
		FlagLogFormat:   cfg.LogFormat,
		FlagMaxAnyDepth: cfg.MaxAnyDepth,
		FlagAPIAddress:  cfg.APIAddress,
	}
}

// ReadConfig reads the configuration from appOpts. Unset keys keep their
// defaults.
func ReadConfig(appOpts servertypes.AppOptions) (Config, error) {
	cfg := DefaultConfig()

	if v := cast.ToString(appOpts.Get(FlagLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := cast.ToString(appOpts.Get(FlagLogFormat)); v != "" {
		cfg.LogFormat = v
	}
	if v := appOpts.Get(FlagMaxAnyDepth); v != nil {
		depth, err := cast.ToIntE(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", FlagMaxAnyDepth, err)
		}
		cfg.MaxAnyDepth = depth
	}
	if v := cast.ToString(appOpts.Get(FlagAPIAddress)); v != "" {
		cfg.APIAddress = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", FlagLogLevel, err)
	}
	if c.LogFormat != LogFormatPlain && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%s: must be %q or %q, got %q", FlagLogFormat, LogFormatPlain, LogFormatJSON, c.LogFormat)
	}
	if c.MaxAnyDepth < 1 {
		return fmt.Errorf("%s: must be positive, got %d", FlagMaxAnyDepth, c.MaxAnyDepth)
	}
	if c.APIAddress == "" {
		return fmt.Errorf("%s: must not be empty", FlagAPIAddress)
	}
	return nil
}

// NewLogger builds the process logger described by cfg.
func NewLogger(cfg Config, w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FlagLogLevel, err)
	}

	opts := []log.Option{log.LevelOption(level)}
	if cfg.LogFormat == LogFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}
