// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package plumbing

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/lib/gitobject"
)

// catFileParams holds the parameters for the cat-file command.
type catFileParams struct {
	PrettyPrint bool `flag:"pretty,p" desc:"pretty-print <object> content"`
}

// CatFileCommand returns the "cat-file" command.
func CatFileCommand() *cli.Command {
	var params catFileParams

	return &cli.Command{
		Name:    "cat-file",
		Summary: "Print the content of a repository object",
		Description: `Stream the decompressed content of an object from the .git object
database to stdout. Only pretty-print mode (-p) is supported.

An implausible or unknown object name is reported as
"fatal: Not a valid object name <sha>" with exit code 128, matching
git's contract.`,
		Usage: "ingot cat-file -p <object>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("cat-file", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Print a blob",
				Command:     "ingot cat-file -p 3b18e512dba79e4c8300dd08aeb37f8e728b8dad",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: ingot cat-file -p <object>")
			}
			if !params.PrettyPrint {
				return cli.ErrNotImplemented("cat-file without -p")
			}

			name := args[0]
			if !gitobject.ValidName(name) {
				return invalidObjectName(name)
			}

			store := gitobject.NewStore(gitobject.GitDirName)
			object, err := store.Open(name)
			if errors.Is(err, fs.ErrNotExist) {
				return invalidObjectName(name)
			}
			if err != nil {
				return err
			}
			defer object.Close()

			_, err = io.Copy(os.Stdout, object)
			return err
		},
	}
}

// invalidObjectName prints git's fatal line and carries exit code 128.
func invalidObjectName(name string) error {
	fmt.Fprintf(os.Stderr, "fatal: Not a valid object name %s\n", name)
	return &cli.ExitError{Code: 128}
}
