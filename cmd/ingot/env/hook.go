// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
)

// hookParams holds the parameters for the env hook command.
type hookParams struct {
	Dir string `flag:"dir" desc:"project directory" default:"."`
}

func hookCommand() *cli.Command {
	var params hookParams

	return &cli.Command{
		Name:    "hook",
		Summary: "Emit the shell activation snippet",
		Description: `Emit a POSIX shell snippet that activates the project environment:
sorted export lines for the environment descriptor, then sorted alias
definitions. Intended for eval in a shell rc file or direnv hook.

The output is deterministic — identical declarations produce
byte-identical snippets.`,
		Usage: "ingot env hook [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("hook", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Activate in the current shell",
				Command:     `eval "$(ingot env hook)"`,
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			descriptor, err := materialize(params.Dir, "")
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(os.Stdout, descriptor.HookScript())
			return err
		},
	}
}
