// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package plumbing

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/lib/gitobject"
)

// hashObjectParams holds the parameters for the hash-object command.
type hashObjectParams struct {
	Write bool `flag:"write,w" desc:"write the object into the object database"`
}

// HashObjectCommand returns the "hash-object" command.
func HashObjectCommand() *cli.Command {
	var params hashObjectParams

	return &cli.Command{
		Name:    "hash-object",
		Summary: "Compute the object name of a file's content",
		Description: `Compute the SHA-1 object name a file's content would have as a blob
(the hash covers the "blob <size>" header plus the content, streamed
with constant memory) and print it. With -w, also compress and store
the object in the .git object database.`,
		Usage: "ingot hash-object [-w] <file>",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("hash-object", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Hash a file without storing it",
				Command:     "ingot hash-object src/main.rs",
			},
			{
				Description: "Hash and store",
				Command:     "ingot hash-object -w src/main.rs",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: ingot hash-object [-w] <file>")
			}
			path := args[0]

			var name string
			var err error
			if params.Write {
				if _, statErr := os.Stat(gitobject.GitDirName); statErr != nil {
					return fmt.Errorf("not a git repository (run 'ingot init' first)")
				}
				name, err = gitobject.NewStore(gitobject.GitDirName).WriteBlobFile(path)
			} else {
				name, err = gitobject.HashBlobFile(path)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, name)
			return nil
		},
	}
}
