// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/lib/devshell"
	"github.com/ingot-dev/ingot/lib/toolchain"
)

// showParams holds the parameters for the env show command.
type showParams struct {
	cli.JSONOutput
	Dir      string `json:"dir" flag:"dir" desc:"project directory" default:"."`
	Platform string `json:"platform" flag:"platform" desc:"platform identifier (default: current machine)"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show the materialized environment",
		Description: `Resolve the project's toolchain and print the environment descriptor,
package set, and aliases that activation would install. Use --platform
to inspect the environment of a different machine class.`,
		Usage: "ingot env show [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Show what a darwin machine would get",
				Command:     "ingot env show --platform aarch64-darwin",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			descriptor, err := materialize(params.Dir, params.Platform)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(descriptor); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "PLATFORM\t%s\n", descriptor.Platform)
			fmt.Fprintf(tw, "TOOLCHAIN\t%s\n", descriptor.Toolchain.Channel)
			fmt.Fprintf(tw, "PACKAGES\t%s\n", strings.Join(descriptor.Packages, ", "))
			tw.Flush()

			fmt.Fprintln(os.Stdout)
			envWriter := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(envWriter, "VARIABLE\tVALUE\n")
			for _, name := range sortedKeys(descriptor.Env) {
				fmt.Fprintf(envWriter, "%s\t%s\n", name, descriptor.Env[name])
			}
			envWriter.Flush()

			fmt.Fprintln(os.Stdout)
			aliasWriter := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(aliasWriter, "ALIAS\tCOMMAND\n")
			for _, name := range sortedKeys(descriptor.Aliases) {
				fmt.Fprintf(aliasWriter, "%s\t%s\n", name, descriptor.Aliases[name])
			}
			return aliasWriter.Flush()
		},
	}
}

// materialize resolves the toolchain and builds the descriptor,
// defaulting to the current machine's platform.
func materialize(dir, platform string) (*devshell.Descriptor, error) {
	resolved, err := toolchain.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if platform == "" {
		return devshell.Materialize(dir, resolved)
	}
	return devshell.MaterializeFor(dir, resolved, platform)
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
