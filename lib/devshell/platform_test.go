// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package devshell

import (
	"strings"
	"testing"
)

func TestSupportedPlatforms_Sorted(t *testing.T) {
	t.Parallel()

	platforms := SupportedPlatforms()
	if len(platforms) == 0 {
		t.Fatal("no supported platforms")
	}
	for i := 1; i < len(platforms); i++ {
		if platforms[i-1] >= platforms[i] {
			t.Errorf("platforms not sorted: %q before %q", platforms[i-1], platforms[i])
		}
	}
}

func TestHostTriple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		platform string
		want     string
	}{
		{platform: "x86_64-linux", want: "x86_64-unknown-linux-gnu"},
		{platform: "aarch64-linux", want: "aarch64-unknown-linux-gnu"},
		{platform: "x86_64-darwin", want: "x86_64-apple-darwin"},
		{platform: "aarch64-darwin", want: "aarch64-apple-darwin"},
	}

	for _, testCase := range tests {
		got, err := HostTriple(testCase.platform)
		if err != nil {
			t.Errorf("HostTriple(%q): %v", testCase.platform, err)
			continue
		}
		if got != testCase.want {
			t.Errorf("HostTriple(%q) = %q, want %q", testCase.platform, got, testCase.want)
		}
	}

	if _, err := HostTriple("mips-linux"); err == nil {
		t.Error("expected error for unsupported platform")
	}
}

func TestGoArchToPlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arch string
		want string
	}{
		{arch: "amd64", want: "x86_64"},
		{arch: "arm64", want: "aarch64"},
		{arch: "386", want: "i686"},
		{arch: "riscv64", want: "riscv64"},
	}

	for _, testCase := range tests {
		if got := goArchToPlatform(testCase.arch); got != testCase.want {
			t.Errorf("goArchToPlatform(%q) = %q, want %q", testCase.arch, got, testCase.want)
		}
	}
}

func TestCurrentPlatform_Shape(t *testing.T) {
	t.Parallel()

	platform := CurrentPlatform()
	if !strings.Contains(platform, "-") {
		t.Errorf("CurrentPlatform() = %q, want <arch>-<os>", platform)
	}
}
