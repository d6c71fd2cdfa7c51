// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/ingot-dev/ingot/cmd/ingot/cli"
	"github.com/ingot-dev/ingot/lib/devshell"
	"github.com/ingot-dev/ingot/lib/toolchain"
)

// runCommand executes a command's Run function with stdout captured.
func runCommand(t *testing.T, command *cli.Command, args []string) (string, error) {
	t.Helper()

	read, write, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	saved := os.Stdout
	os.Stdout = write
	t.Cleanup(func() { os.Stdout = saved })

	runErr := command.Execute(args)
	os.Stdout = saved

	write.Close()
	output, err := io.ReadAll(read)
	if err != nil {
		t.Fatalf("read captured stdout: %v", err)
	}
	return string(output), runErr
}

func TestHook_EmitsHookScript(t *testing.T) {
	t.Setenv("RUSTUP_HOME", "/rustup")
	dir := t.TempDir()

	resolved, err := toolchain.Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	descriptor, err := devshell.Materialize(dir, resolved)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	want := descriptor.HookScript()

	output, err := runCommand(t, hookCommand(), []string{"--dir", dir})
	if err != nil {
		t.Fatalf("env hook: %v", err)
	}
	if output != want {
		t.Errorf("hook output differs from the hook script:\ngot  %q\nwant %q", output, want)
	}
	if !strings.Contains(output, "export RUST_LOG='trace'") {
		t.Errorf("hook output missing the RUST_LOG export:\n%s", output)
	}
}

func TestShow_ListsEnvironment(t *testing.T) {
	t.Setenv("RUSTUP_HOME", "/rustup")

	output, err := runCommand(t, showCommand(),
		[]string{"--dir", t.TempDir(), "--platform", "x86_64-linux"})
	if err != nil {
		t.Fatalf("env show: %v", err)
	}

	for _, expected := range []string{"x86_64-linux", "RUST_SRC_PATH", "gdb", "cargo build"} {
		if !strings.Contains(output, expected) {
			t.Errorf("show output missing %q:\n%s", expected, output)
		}
	}
}

func TestShow_UnsupportedPlatform(t *testing.T) {
	_, err := runCommand(t, showCommand(),
		[]string{"--dir", t.TempDir(), "--platform", "sparc-solaris"})
	if err == nil || !strings.Contains(err.Error(), "unsupported platform") {
		t.Errorf("env show with an unknown platform: err = %v, want 'unsupported platform'", err)
	}
}
