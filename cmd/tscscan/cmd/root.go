package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TrustedSmartChain/tscscan/app"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/client/cli"
	ibcdecodekeeper "github.com/TrustedSmartChain/tscscan/x/ibcdecode/keeper"
)

// NewRootCmd creates the tscscan root command. Configuration is loaded from
// <home>/config.toml, TSCSCAN_* environment variables and flags, in
// increasing order of precedence.
func NewRootCmd() *cobra.Command {
	var (
		v       = viper.New()
		scanApp *app.ScanApp
	)

	rootCmd := &cobra.Command{
		Use:           "tscscan",
		Short:         "TSC explorer backend: IBC transaction and event decoding",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			scanApp, err = loadApp(cmd, v)
			return err
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flags.FlagHome, app.DefaultNodeHome, "directory for config.toml")
	pf.String(app.FlagLogLevel, app.DefaultConfig().LogLevel, "log level (trace|debug|info|warn|error)")
	pf.String(app.FlagLogFormat, app.DefaultConfig().LogFormat, "log format (plain|json)")
	pf.Int(app.FlagMaxAnyDepth, app.DefaultConfig().MaxAnyDepth, "maximum nesting depth of decoded Any values")

	rootCmd.AddCommand(
		cli.NewQueryCmd(func() ibcdecodekeeper.Keeper { return scanApp.IBCDecodeKeeper }),
		serveCmd(func() *app.ScanApp { return scanApp }),
	)
	return rootCmd
}

func serveCmd(appFn func() *app.ScanApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the decoding HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return appFn().Serve(ctx)
		},
	}
	cmd.Flags().String(app.FlagAPIAddress, app.DefaultConfig().APIAddress, "address the HTTP API listens on")
	return cmd
}

func loadApp(cmd *cobra.Command, v *viper.Viper) (*app.ScanApp, error) {
	for key, value := range app.Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(app.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	home := v.GetString(flags.FlagHome)
	v.SetConfigFile(filepath.Join(home, "config.toml"))
	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := app.ReadConfig(v)
	if err != nil {
		return nil, err
	}
	logger, err := app.NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return app.NewScanApp(logger, cfg), nil
}
