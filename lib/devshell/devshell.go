// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package devshell

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ingot-dev/ingot/lib/toolchain"
)

// Descriptor is the fully-specified activation environment for a
// platform: environment variables, auxiliary packages, and shell
// aliases. Constructed once per activation, immutable afterward.
type Descriptor struct {
	// Platform is the identifier the descriptor was materialized for.
	Platform string `json:"platform"`

	// Toolchain is the resolved toolchain the environment wraps.
	Toolchain toolchain.Spec `json:"toolchain"`

	// Env maps variable name to value. Keys are unique; rendering
	// order is sorted.
	Env map[string]string `json:"env"`

	// Packages are the auxiliary tools required alongside the
	// toolchain (debugger, crypto library, config-discovery tool),
	// sorted.
	Packages []string `json:"packages"`

	// Aliases are interactive shell macros, keyed by alias name.
	Aliases map[string]string `json:"aliases"`
}

// Materialize builds the descriptor for the current platform. See
// MaterializeFor.
func Materialize(dir string, resolved *toolchain.Resolved) (*Descriptor, error) {
	return MaterializeFor(dir, resolved, CurrentPlatform())
}

// MaterializeFor builds the activation descriptor for a project
// directory and platform: built-in defaults, overlaid with the
// optional ingot.yaml shell section and .ingot/aliases.jsonc. The
// result is deterministic for fixed inputs.
func MaterializeFor(dir string, resolved *toolchain.Resolved, platform string) (*Descriptor, error) {
	triple, err := HostTriple(platform)
	if err != nil {
		return nil, err
	}

	config, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	env := map[string]string{
		// Trace-level logging for the project's own binaries.
		"RUST_LOG": "trace",
		// Source pointer for editor tooling (rust-analyzer resolves
		// std sources through this).
		"RUST_SRC_PATH": sourcePath(resolved.Spec.Channel, triple),
	}
	for name, value := range config.Shell.Env {
		env[name] = value
	}

	packages, err := PackagesFor(platform)
	if err != nil {
		return nil, err
	}
	packages = mergePackages(packages, config.Shell.Packages)

	aliases, err := loadAliases(dir)
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		Platform:  platform,
		Toolchain: resolved.Spec,
		Env:       env,
		Packages:  packages,
		Aliases:   aliases,
	}, nil
}

// PackagesFor returns the default auxiliary package set for a
// platform: crypto library, pkg-config discovery, and the platform's
// native debugger. Every supported platform yields a non-empty set.
func PackagesFor(platform string) ([]string, error) {
	if _, err := HostTriple(platform); err != nil {
		return nil, err
	}

	packages := []string{"openssl", "pkg-config"}
	if strings.HasSuffix(platform, "-darwin") {
		packages = append(packages, "lldb")
	} else {
		packages = append(packages, "gdb")
	}
	sort.Strings(packages)
	return packages, nil
}

// sourcePath computes the RUST_SRC_PATH value: the standard library
// sources inside the installed toolchain directory.
func sourcePath(channel, triple string) string {
	return filepath.Join(rustupHome(), "toolchains", channel+"-"+triple,
		"lib", "rustlib", "src", "rust", "library")
}

// rustupHome returns the rustup root: $RUSTUP_HOME if set, otherwise
// ~/.rustup. Falls back to the bare ".rustup" when the home directory
// is unknown — a degenerate environment where no path would be right.
func rustupHome() string {
	if home := os.Getenv("RUSTUP_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rustup"
	}
	return filepath.Join(home, ".rustup")
}

// mergePackages appends extras to base, dropping duplicates, and
// returns the sorted result.
func mergePackages(base, extras []string) []string {
	seen := make(map[string]bool, len(base)+len(extras))
	var merged []string
	for _, pkg := range append(base, extras...) {
		if pkg == "" || seen[pkg] {
			continue
		}
		seen[pkg] = true
		merged = append(merged, pkg)
	}
	sort.Strings(merged)
	return merged
}

// HookScript renders the descriptor as a POSIX shell activation
// snippet: sorted export lines, then sorted alias lines. Output is
// byte-identical for identical descriptors.
func (d *Descriptor) HookScript() string {
	var script strings.Builder

	names := make([]string, 0, len(d.Env))
	for name := range d.Env {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&script, "export %s=%s\n", name, shellQuote(d.Env[name]))
	}

	aliasNames := make([]string, 0, len(d.Aliases))
	for name := range d.Aliases {
		aliasNames = append(aliasNames, name)
	}
	sort.Strings(aliasNames)
	for _, name := range aliasNames {
		fmt.Fprintf(&script, "alias %s=%s\n", name, shellQuote(d.Aliases[name]))
	}

	return script.String()
}

// shellQuote single-quotes a value for POSIX shells. Embedded single
// quotes use the standard '\'' escape.
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
