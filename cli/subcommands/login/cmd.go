// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package login

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/foundriesio/sensor-validator/cli/config"
)

var LoginCmd = &cobra.Command{
	Use:   "login <context-name> <server-url>",
	Short: "Configure authentication for a server",
	Long: `Configure a context pointing at a sensor-validator server.

The server URL and API token are saved to ~/.config/sensorctl.yaml.
Leave out --token for servers running without authentication.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		contextName := args[0]
		serverURL := args[1]

		token, _ := cmd.Flags().GetString("token")
		setDefault, _ := cmd.Flags().GetBool("set-default")
		configPath, _ := cmd.Flags().GetString("config")

		return login(contextName, serverURL, token, configPath, setDefault)
	},
}

func init() {
	LoginCmd.Flags().String("token", "", "API token or JWT for authentication")
	LoginCmd.Flags().Bool("set-default", true, "Set this context as the default")
	LoginCmd.Flags().String("config", "", "Specify the configuration file to use")
}

func login(contextName, serverURL, token, configPath string, setDefault bool) error {
	if u, err := url.Parse(serverURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server URL: %s", serverURL)
	}

	// Load existing config or create new one
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = &config.Config{
				Contexts: make(map[string]config.Context),
			}
		} else {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]config.Context)
	}
	cfg.Contexts[contextName] = config.Context{
		URL:   serverURL,
		Token: token,
	}

	if setDefault {
		cfg.ActiveContext = contextName
	}

	if err := config.SaveConfig(configPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Successfully configured context '%s'\n", contextName)
	fmt.Printf("  Server URL: %s\n", serverURL)
	if setDefault {
		fmt.Printf("  Set as default context\n")
	}

	return nil
}
