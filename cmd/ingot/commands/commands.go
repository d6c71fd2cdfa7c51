// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete ingot CLI command tree.
package commands

import (
	"fmt"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	envcmd "github.com/ingot-dev/ingot/cmd/ingot/env"
	"github.com/ingot-dev/ingot/cmd/ingot/plumbing"
	toolchaincmd "github.com/ingot-dev/ingot/cmd/ingot/toolchain"
	"github.com/ingot-dev/ingot/lib/version"
)

// Root builds and returns the complete ingot CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "ingot",
		Description: `Ingot: a workbench for Rust development environments.

Resolve the project's toolchain declaration, materialize a
reproducible shell environment (variables, packages, aliases), and
inspect git object databases with plumbing commands.`,
		Subcommands: []*cli.Command{
			toolchaincmd.Command(),
			envcmd.Command(),
			plumbing.InitCommand(),
			plumbing.CatFileCommand(),
			plumbing.HashObjectCommand(),
			plumbing.LsTreeCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("ingot %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Resolve the toolchain declared by the current project",
				Command:     "ingot toolchain resolve",
			},
			{
				Description: "Check whether the pinned toolchain matches the declaration",
				Command:     "ingot toolchain status --check",
			},
			{
				Description: "Load the project environment into the current shell",
				Command:     `eval "$(ingot env hook)"`,
			},
			{
				Description: "Initialize a git object database",
				Command:     "ingot init",
			},
		},
	}
}
