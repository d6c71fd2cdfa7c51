// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/lib/toolchain"
)

// statusParams holds the parameters for the toolchain status command.
type statusParams struct {
	cli.JSONOutput
	Dir   string `json:"dir" flag:"dir" desc:"project directory" default:"."`
	Check bool   `json:"check" flag:"check" desc:"exit 1 when the declaration drifted from the pin"`
}

// statusResult is the JSON output for toolchain status.
type statusResult struct {
	Pinned  *toolchain.Pin      `json:"pinned,omitempty"`
	Current *toolchain.Resolved `json:"current"`
	InSync  bool                `json:"in_sync"`
}

func statusCommand() *cli.Command {
	var params statusParams

	return &cli.Command{
		Name:    "status",
		Summary: "Compare the pinned toolchain against the declaration",
		Description: `Show the recorded toolchain pin next to a fresh resolution of the
declaration files. Matching identity digests mean the declaration has
not changed since the pin was written; differing digests mean drift.

With --check, drift (or a missing pin) is reported via exit code 1,
which is the CI-friendly form.`,
		Usage: "ingot toolchain status [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("status", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			current, err := toolchain.Resolve(params.Dir)
			if err != nil {
				return err
			}

			pinned, err := toolchain.ReadPin(params.Dir)
			if errors.Is(err, fs.ErrNotExist) {
				if done, emitErr := params.EmitJSON(statusResult{Current: current}); done {
					if emitErr != nil {
						return emitErr
					}
					return checkFailure(params.Check)
				}
				fmt.Fprintln(os.Stderr, "No toolchain pinned.")
				fmt.Fprintln(os.Stderr, "")
				fmt.Fprintln(os.Stderr, "Record one with: ingot toolchain resolve --pin")
				return checkFailure(params.Check)
			}
			if err != nil {
				return err
			}

			inSync := pinned.Identity == current.Identity
			if done, err := params.EmitJSON(statusResult{
				Pinned:  pinned,
				Current: current,
				InSync:  inSync,
			}); done {
				if err != nil {
					return err
				}
				if !inSync {
					return checkFailure(params.Check)
				}
				return nil
			}

			printResolved(current)
			if inSync {
				fmt.Fprintf(os.Stdout, "\nIn sync with pin recorded %s.\n",
					pinned.PinnedAt.Format("2006-01-02 15:04:05 UTC"))
				return nil
			}

			fmt.Fprintf(os.Stdout, "\nDrift detected: pin %s (channel %s) does not match the declaration.\n",
				pinned.Identity, pinned.Spec.Channel)
			return checkFailure(params.Check)
		},
	}
}

// checkFailure converts a drift condition into exit code 1 when
// --check is set, and into a normal (informational) exit otherwise.
func checkFailure(check bool) error {
	if check {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
