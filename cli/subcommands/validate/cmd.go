// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/foundriesio/sensor-validator/cli/api"
	"github.com/foundriesio/sensor-validator/sensor"
)

var ValidateCmd = &cobra.Command{
	Use:   "validate <file.csv>",
	Short: "Validate the sensors listed in a CSV file",
	Long: `Upload a CSV file with an "id" column to the server. Every listed sensor is
checked and, when needed, a firmware or configuration update is scheduled.

Use "-" to read the file from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJson, _ := cmd.Flags().GetBool("json")
		strict, _ := cmd.Flags().GetBool("strict")
		return validate(api.CtxGetApi(cmd.Context()), args[0], cmd.InOrStdin(), cmd.OutOrStdout(), asJson, strict)
	},
}

func init() {
	ValidateCmd.Flags().Bool("json", false, "Print the results as JSON")
	ValidateCmd.Flags().Bool("strict", false, "Fail when any sensor is not ready")
}

func validate(a *api.Api, path string, stdin io.Reader, out io.Writer, asJson, strict bool) error {
	var content io.Reader
	name := filepath.Base(path)
	if path == "-" {
		content = stdin
		name = "stdin.csv"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close() // nolint:errcheck
		content = f
	}

	results, err := a.Validate(name, content)
	if err != nil {
		return err
	}

	if asJson {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else if err := printTable(out, results); err != nil {
		return err
	}

	if strict {
		notReady := 0
		for _, r := range results {
			if r.Status != sensor.StatusReady {
				notReady++
			}
		}
		if notReady > 0 {
			return fmt.Errorf("%d of %d sensors are not ready", notReady, len(results))
		}
	}
	return nil
}

func printTable(out io.Writer, results []api.ValidationResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tSTATUS"); err != nil {
		return err
	}
	counts := map[sensor.Status]int{}
	for _, r := range results {
		counts[r.Status]++
		if _, err := fmt.Fprintf(w, "%d\t%s\n", r.Id, r.Status); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%d sensors: %d ready, %d updating firmware, %d updating configuration, %d unknown firmware, %d failed\n",
		len(results), counts[sensor.StatusReady], counts[sensor.StatusUpdatingFirmware],
		counts[sensor.StatusUpdatingConfiguration], counts[sensor.StatusFirmwareUnknown], counts[sensor.StatusUpdateFailed])
	return err
}
