// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package env implements the ingot env subcommands: materializing the
// project's dev-shell environment (variables, auxiliary packages,
// aliases) around the resolved toolchain, and emitting the shell hook
// that activates it.
package env

import (
	"github.com/ingot-dev/ingot/cmd/ingot/cli"
)

// Command returns the "env" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "env",
		Summary: "Materialize the project's dev-shell environment",
		Description: `Materialize the activation environment for a project: environment
variables (RUST_SRC_PATH for editor tooling, RUST_LOG for trace
logging), the auxiliary package set (debugger, openssl, pkg-config),
and interactive shell aliases.

Defaults come from the resolved toolchain and the platform; the
optional ingot.yaml shell section and .ingot/aliases.jsonc overlay
them. Materialization is deterministic — identical inputs render
byte-identical output.`,
		Subcommands: []*cli.Command{
			showCommand(),
			hookCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Inspect the environment ingot would activate",
				Command:     "ingot env show",
			},
			{
				Description: "Activate the environment in the current shell",
				Command:     `eval "$(ingot env hook)"`,
			},
		},
	}
}
