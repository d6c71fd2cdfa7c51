// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package devshell

import (
	"fmt"
	"runtime"
	"sort"
)

// Platform identifiers follow the <arch>-<os> convention
// (x86_64-linux, aarch64-darwin, ...).

// SupportedPlatforms returns the platform identifiers ingot can
// materialize an environment for, sorted.
func SupportedPlatforms() []string {
	platforms := make([]string, 0, len(platformTriples))
	for platform := range platformTriples {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	return platforms
}

// platformTriples maps a platform identifier to the rustc host triple
// used in toolchain directory names ($RUSTUP_HOME/toolchains/
// <channel>-<triple>).
var platformTriples = map[string]string{
	"x86_64-linux":   "x86_64-unknown-linux-gnu",
	"aarch64-linux":  "aarch64-unknown-linux-gnu",
	"x86_64-darwin":  "x86_64-apple-darwin",
	"aarch64-darwin": "aarch64-apple-darwin",
}

// CurrentPlatform returns the platform identifier for this machine.
func CurrentPlatform() string {
	return goArchToPlatform(goarch()) + "-" + goos()
}

// HostTriple returns the rustc host triple for a platform identifier.
func HostTriple(platform string) (string, error) {
	triple, ok := platformTriples[platform]
	if !ok {
		return "", fmt.Errorf("unsupported platform %q (supported: %v)", platform, SupportedPlatforms())
	}
	return triple, nil
}

// goArchToPlatform translates GOARCH names to the uname-style arch
// component of a platform identifier.
func goArchToPlatform(arch string) string {
	switch arch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "386":
		return "i686"
	default:
		return arch
	}
}

// goarch and goos are split out so tests exercise the translation
// directly without depending on the machine running them.
func goarch() string { return runtime.GOARCH }
func goos() string   { return runtime.GOOS }
