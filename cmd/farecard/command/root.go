// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the farecard
// project. Commands are organized using the cobra library.
// The root command runs a deterministic simulation of the fare engine
// over a manually advanced clock, exercising the discount policies,
// the transfer rule, and the recharge limits, while the "config"
// sub-command can be used for the configuration file actions.
//
//	./farecard [-c /path/of/config.yaml] [--json]    # run simulation
//	./farecard config validate /path/of/config.yaml
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/adapter/config"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "farecard",
	Short: "A transit fare-card engine",
	Long: `A transit fare-card engine which models rechargeable cards,
bus lines, riders, and the fare rules connecting them: balance limits
with a negative travel allowance, a pending balance for top-ups beyond
the ceiling, free-pass and half-fare franchises with per-day caps and
usage windows, transfers between different lines, and frequent-rider
monthly discounts.
The core models and use cases layers are kept independent of the
third-party dependent adapters layer, interacting with them through a
series of interfaces. Use case objects distinguish between mandatory
parameters and optional ones with help of the functional options, and
a manual clock makes the day-based rules reproducible.
Running without arguments simulates a day of trips over the in-memory
registries and prints the issued tickets.`,
	RunE: runSimulation,
}

// loadConfig loads the configuration file addressed by the -c flag,
// falling back to the default settings when no path was given, and
// installs the configured logger as the slog default.
func loadConfig() (*config.Config, error) {
	var c *config.Config
	if cfgPath == "" {
		c = config.Default()
		if err := c.ValidateAndNormalize(); err != nil {
			return nil, fmt.Errorf("validating defaults: %w", err)
		}
	} else {
		var err error
		if c, err = config.Load(cfgPath); err != nil {
			return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
		}
	}
	slog.SetDefault(c.Logging.NewLogger())
	return c, nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.Flags().BoolVar(
		&jsonOut, "json", false, "print issued tickets as json",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args or the CONFIG_FILE environment variable. An unset path asks
// for the built-in default settings instead of a file.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	cfgPath = os.Getenv("CONFIG_FILE")
}
