// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/lib/toolchain"
)

// resolveParams holds the parameters for the toolchain resolve command.
type resolveParams struct {
	cli.JSONOutput
	Dir string `json:"dir" flag:"dir" desc:"project directory" default:"."`
	Pin bool   `json:"pin" flag:"pin" desc:"record the resolution at .ingot/toolchain.pin"`
}

func resolveCommand() *cli.Command {
	var params resolveParams

	return &cli.Command{
		Name:    "resolve",
		Summary: "Resolve the project's toolchain declaration",
		Description: `Resolve the toolchain spec for a project directory and print it.

The resolved spec includes the channel, the enabled extensions, any
extra compilation targets, the rustup profile, the declaration file
it came from, and the identity digest. Two machines printing the same
identity resolve bit-identical toolchains.`,
		Usage: "ingot toolchain resolve [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("resolve", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Resolve a project in another directory",
				Command:     "ingot toolchain resolve --dir ../mini-git",
			},
			{
				Description: "Resolve for editor integration",
				Command:     "ingot toolchain resolve --json",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			resolved, err := toolchain.Resolve(params.Dir)
			if err != nil {
				return err
			}

			if params.Pin {
				path, err := toolchain.WritePin(params.Dir, resolved)
				if err != nil {
					return err
				}
				logger := cli.NewCommandLogger().With("command", "toolchain/resolve")
				logger.Info("pinned toolchain",
					"path", path,
					"channel", resolved.Spec.Channel,
					"identity", resolved.Identity.String())
			}

			if done, err := params.EmitJSON(resolved); done {
				return err
			}

			printResolved(resolved)
			return nil
		},
	}
}

// printResolved renders a resolution as the aligned text form shared
// by resolve and status.
func printResolved(resolved *toolchain.Resolved) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "CHANNEL\t%s\n", resolved.Spec.Channel)
	fmt.Fprintf(tw, "COMPONENTS\t%s\n", strings.Join(resolved.Spec.Components, ", "))
	if len(resolved.Spec.Targets) > 0 {
		fmt.Fprintf(tw, "TARGETS\t%s\n", strings.Join(resolved.Spec.Targets, ", "))
	}
	if resolved.Spec.Profile != "" {
		fmt.Fprintf(tw, "PROFILE\t%s\n", resolved.Spec.Profile)
	}
	fmt.Fprintf(tw, "SOURCE\t%s\n", resolved.Source)
	fmt.Fprintf(tw, "IDENTITY\t%s\n", resolved.Identity)
	tw.Flush()
}
