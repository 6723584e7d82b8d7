package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcipher/cmd/lvcipher/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Resolved in PersistentPreRunE.
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lvcipher",
	Short: "lvcipher - classical substitution and route transposition ciphers",
	Long: `lvcipher encrypts and decrypts text with two classical ciphers:

  alpha  keyed substitution over the Russian alphabet (33 letters, Ё included)
  route  table route transposition keyed by a column count

These ciphers are for study only. They do not protect data.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		cfg = loaded
		logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Level, verbose)
		logger.Debug("configuration loaded", "path", cfgFile, "log_level", cfg.Log.Level)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "lvcipher.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
