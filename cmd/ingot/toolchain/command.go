// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolchain implements the ingot toolchain subcommands:
// resolving the project's pinned Rust toolchain from its declaration
// files and checking the recorded pin for drift.
//
// Resolution follows rustup's own conventions: rust-toolchain.toml is
// authoritative, the legacy rust-toolchain file is the fallback, and
// a project that declares nothing gets latest stable with rust-src
// and rustfmt. The subcommands never install anything — whether a
// resolved channel exists is rustup's business.
package toolchain

import (
	"github.com/ingot-dev/ingot/cmd/ingot/cli"
)

// Command returns the "toolchain" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "toolchain",
		Summary: "Resolve and pin the project's Rust toolchain",
		Description: `Resolve the project's Rust toolchain declaration.

The declaration files are checked in priority order: rust-toolchain.toml
(structured), then rust-toolchain (legacy, bare channel name). A project
with neither file resolves to the latest stable channel with the rust-src
and rustfmt extensions.

Resolution is deterministic: the same declaration always produces the
same toolchain identity digest, on every machine.`,
		Subcommands: []*cli.Command{
			resolveCommand(),
			statusCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Resolve the toolchain for the current directory",
				Command:     "ingot toolchain resolve",
			},
			{
				Description: "Resolve and record the pin for drift checking",
				Command:     "ingot toolchain resolve --pin",
			},
			{
				Description: "Fail CI when the declaration drifted from the pin",
				Command:     "ingot toolchain status --check",
			},
		},
	}
}
