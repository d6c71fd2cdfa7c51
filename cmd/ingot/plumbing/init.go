// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package plumbing

import (
	"fmt"
	"os"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/lib/gitobject"
)

// InitCommand returns the "init" command.
func InitCommand() *cli.Command {
	return &cli.Command{
		Name:    "init",
		Summary: "Initialize a git repository",
		Description: `Create an empty git repository in the current directory: the .git
directory with its objects and refs subdirectories, and a HEAD
pointing at refs/heads/master.`,
		Usage: "ingot init",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if err := gitobject.Init("."); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "Initialized git directory")
			return nil
		},
	}
}
