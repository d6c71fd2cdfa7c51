// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import (
	"strings"
	"testing"
)

func TestIdentify_StableAcrossCalls(t *testing.T) {
	t.Parallel()

	spec := Spec{
		Channel:    "1.70.0",
		Components: []string{"rust-src", "rustfmt"},
	}

	first, err := Identify(spec)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	second, err := Identify(spec)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if first != second {
		t.Errorf("digests differ for identical specs: %s != %s", first, second)
	}
}

func TestIdentify_DistinguishesSpecs(t *testing.T) {
	t.Parallel()

	base := Spec{Channel: "stable", Components: []string{"rust-src", "rustfmt"}}

	variants := []Spec{
		{Channel: "beta", Components: []string{"rust-src", "rustfmt"}},
		{Channel: "stable", Components: []string{"rust-src"}},
		{Channel: "stable", Components: []string{"rustfmt", "rust-src"}},
		{Channel: "stable", Components: []string{"rust-src", "rustfmt"}, Profile: "minimal"},
		{Channel: "stable", Components: []string{"rust-src", "rustfmt"}, Targets: []string{"wasm32-unknown-unknown"}},
	}

	baseIdentity, err := Identify(base)
	if err != nil {
		t.Fatalf("Identify(base): %v", err)
	}

	for _, variant := range variants {
		identity, err := Identify(variant)
		if err != nil {
			t.Fatalf("Identify(%+v): %v", variant, err)
		}
		if identity == baseIdentity {
			t.Errorf("spec %+v collides with base identity", variant)
		}
	}
}

func TestIdentity_HexRoundTrip(t *testing.T) {
	t.Parallel()

	identity, err := Identify(DefaultSpec())
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}

	formatted := identity.String()
	if len(formatted) != 64 {
		t.Fatalf("formatted identity is %d chars, want 64", len(formatted))
	}

	parsed, err := ParseIdentity(formatted)
	if err != nil {
		t.Fatalf("ParseIdentity: %v", err)
	}
	if parsed != identity {
		t.Errorf("round trip changed the digest: %s != %s", parsed, identity)
	}
}

func TestParseIdentity_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not hex", input: strings.Repeat("zz", 32)},
		{name: "too short", input: "abcdef"},
		{name: "too long", input: strings.Repeat("ab", 33)},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseIdentity(testCase.input); err == nil {
				t.Fatalf("expected error for %q", testCase.input)
			}
		})
	}
}
