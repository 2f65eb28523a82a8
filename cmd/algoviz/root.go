// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/internal/logging"
)

// app carries what every subcommand needs once the root pre-run has loaded
// configuration.
type app struct {
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "Step-by-step Kruskal traces for graph visualizers",
		Long: `algoviz turns a weighted undirected graph into the consider/add/reject
trace of Kruskal's minimum spanning forest, replays it in the terminal, or
serves it over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			log.Debug("configuration loaded", zap.String("file", viper.ConfigFileUsed()))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Sync on a terminal stderr reports EINVAL; nothing to do about it.
			_ = a.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .algoviz.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("strict", false, "reject asymmetric or otherwise malformed graphs")
	flags.String("tie-break", "discovery", "order of equal-weight edges: discovery or canonical")
	bindFlags(rootCmd, map[string]string{
		"log_level": "log-level",
		"strict":    "strict",
		"tie_break": "tie-break",
	})

	rootCmd.AddCommand(
		newTraceCmd(a),
		newRandomCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".algoviz")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ALGOVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// bindFlags binds viper keys to the named flags of cmd so that a flag set on
// the command line overrides file and environment values.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			panic(fmt.Sprintf("bind %s: %v", key, err))
		}
	}
}
