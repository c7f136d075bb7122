// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foundriesio/sensor-validator/cli/api"
	"github.com/foundriesio/sensor-validator/cli/config"
	"github.com/foundriesio/sensor-validator/cli/subcommands/login"
	"github.com/foundriesio/sensor-validator/cli/subcommands/validate"
)

var rootCmd = &cobra.Command{
	Use:   "sensorctl",
	Short: "A command line interface to the sensor-validator server",
	Long: `sensorctl uploads sensor id files to a sensor-validator server and
reports the compliance status of every sensor.

Configuration is stored in $HOME/.config/sensorctl.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config logic for login command
		if cmd.Name() == "login" {
			return nil
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return fmt.Errorf("failed to get config flag: %w", err)
		}
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		contextName, err := cmd.Flags().GetString("context")
		if err != nil {
			return fmt.Errorf("failed to get context flag: %w", err)
		}

		appctx, err := cfg.GetContext(contextName)
		if err != nil {
			return fmt.Errorf("failed to get current context: %w", err)
		}

		client := api.NewClient(*appctx)

		ctx := api.CtxWithApi(cmd.Context(), client)
		cmd.SetContext(ctx)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("context", "c", "", "Specify the context to use from the configuration file")
	rootCmd.PersistentFlags().StringP("config", "f", "", "Specify the configuration file to use")

	rootCmd.AddCommand(login.LoginCmd)
	rootCmd.AddCommand(validate.ValidateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
