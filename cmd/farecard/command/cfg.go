// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/adapter/config"
	"github.com/spf13/cobra"
)

var cfgCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration file actions",
	Long: `Configuration file actions can be chosen by sub-commands.
The validate sub-command loads a configuration file, checks its format
version and settings, and reports the effective tariff rule book.`,
}

var validateCmd = &cobra.Command{
	Use:   "validate /path/of/config.yaml",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  validateConfig,
}

func validateConfig(_ *cobra.Command, args []string) error {
	c, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", args[0], err)
	}
	t := c.Tariff()
	fmt.Printf("configuration v%s is valid\n", c.Version.String())
	fmt.Printf(
		"fares: urban=%s intercity=%s, balance in [%s, %s]\n",
		t.UrbanFare, t.IntercityFare,
		t.Limits.MinBalance, t.Limits.MaxBalance,
	)
	return nil
}

func init() {
	rootCmd.AddCommand(cfgCmd)
	cfgCmd.AddCommand(validateCmd)
}
