package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ECB2020/Hobyah-sub001/internal/config"
)

var (
	// Global flags
	verbose bool
	cfgPath string
	toUS    bool
	format  string
	outDir  string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sesconv",
	Short: "sesconv - SES v4.1 output file converter",
	Long: `sesconv decodes the fixed-column output files written by the SES
v4.1 subway environment simulation program, converts every value to SI
units (or back), and emits the converted report plus a structured
snapshot of the run for downstream tools.

Diagnostic messages interleaved in the output are preserved and logged,
and partial files from crashed runs are decoded as far as they go.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("to-us") {
			cfg.Conversion.ToUS = toUS
		}
		if cmd.Flags().Changed("format") {
			cfg.Output.Format = format
		}
		if cmd.Flags().Changed("out") {
			cfg.Output.Dir = outDir
		}

		zcfg := zap.NewProductionConfig()
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose || cfg.Logging.Level == "debug" {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else if lvl, perr := zapcore.ParseLevel(cfg.Logging.Level); perr == nil {
			zcfg.Level = zap.NewAtomicLevelAt(lvl)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "sesconv.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&toUS, "to-us", false, "convert SI values back to US customary units")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "snapshot format (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "output directory (default: alongside the input)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
