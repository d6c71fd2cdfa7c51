// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package plumbing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/lib/gitobject"
)

// lsTreeParams holds the parameters for the ls-tree command.
type lsTreeParams struct {
	NameOnly bool `flag:"name-only" desc:"list only filenames"`
}

// LsTreeCommand returns the "ls-tree" command.
func LsTreeCommand() *cli.Command {
	var params lsTreeParams

	return &cli.Command{
		Name:    "ls-tree",
		Summary: "List the contents of a tree object",
		Description: `List the entries of a tree object: mode, object type, object name,
and file name, one entry per line in storage order. With --name-only,
print just the file names.

The tree must be named by its 40-character object name; ref and
revision syntax is not resolved.`,
		Usage: "ingot ls-tree [--name-only] <tree-ish>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("ls-tree", &params)
		},
		Examples: []cli.Example{
			{
				Description: "List file names in a tree",
				Command:     "ingot ls-tree --name-only 4b825dc642cb6eb9a060e54bf8d69288fbee4904",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: ingot ls-tree [--name-only] <tree-ish>")
			}

			name := args[0]
			if !gitobject.ValidName(name) {
				return invalidObjectName(name)
			}

			store := gitobject.NewStore(gitobject.GitDirName)
			entries, err := store.ReadTree(name)
			if errors.Is(err, fs.ErrNotExist) {
				return invalidObjectName(name)
			}
			if err != nil {
				return err
			}

			for _, entry := range entries {
				if params.NameOnly {
					fmt.Fprintln(os.Stdout, entry.Name)
					continue
				}
				fmt.Fprintf(os.Stdout, "%s %s %s\t%s\n",
					paddedMode(entry.Mode), entry.Type, entry.Object, entry.Name)
			}
			return nil
		},
	}
}

// paddedMode renders a mode the way git does: six digits, zero-padded
// (trees are stored as "40000" but printed as "040000").
func paddedMode(mode string) string {
	for len(mode) < 6 {
		mode = "0" + mode
	}
	return mode
}
