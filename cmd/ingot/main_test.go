// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/cmd/ingot/commands"
)

// TestCommandTreeShape walks the full production command tree and
// validates that every node is either runnable or a group with
// subcommands, and that every node below the root carries a summary
// for help output.
func TestCommandTreeShape(t *testing.T) {
	t.Parallel()

	root := commands.Root()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if command.Name == "" {
			t.Errorf("%s: command with empty name", name)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: command has neither Run nor subcommands", name)
		}
		if command != root && command.Summary == "" {
			t.Errorf("%s: command missing summary", name)
		}
	})
}

// TestCommandTreeUniqueNames verifies sibling commands never share
// a name, which would make dispatch ambiguous.
func TestCommandTreeUniqueNames(t *testing.T) {
	t.Parallel()

	walkCommands(commands.Root(), nil, func(command *cli.Command, path []string) {
		seen := make(map[string]bool, len(command.Subcommands))
		for _, sub := range command.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", strings.Join(path, " "), sub.Name)
			}
			seen[sub.Name] = true
		}
	})
}

// walkCommands recursively visits every command in the tree,
// calling visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
