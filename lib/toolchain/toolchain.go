// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Declaration file names, checked in priority order. These are
// rustup's own conventions — changing them would break every project
// that pins a toolchain.
const (
	// TOMLFileName is the structured declaration format.
	TOMLFileName = "rust-toolchain.toml"

	// LegacyFileName is the plain-text declaration format: the file
	// contains nothing but a channel name.
	LegacyFileName = "rust-toolchain"
)

// SourceDefault is the Source value of a Resolved spec when neither
// declaration file was present.
const SourceDefault = "default"

// DefaultChannel is the channel used when no declaration file pins
// one. "stable" means whatever the latest stable release is at
// install time.
const DefaultChannel = "stable"

// Spec identifies a compiler toolchain version and its enabled
// extensions. A Spec is constructed once per resolution and never
// mutated afterward.
type Spec struct {
	// Channel is the toolchain version: a release channel (stable,
	// beta, nightly), a dated channel (nightly-2024-01-15), or an
	// explicit version (1.70.0).
	Channel string `cbor:"channel" json:"channel"`

	// Components are the toolchain extensions to install alongside
	// the compiler (rust-src, rustfmt, clippy, ...).
	Components []string `cbor:"components" json:"components"`

	// Targets are additional compilation targets beyond the host.
	Targets []string `cbor:"targets,omitempty" json:"targets,omitempty"`

	// Profile is the rustup profile (minimal, default, complete).
	// Empty means the installer's default.
	Profile string `cbor:"profile,omitempty" json:"profile,omitempty"`
}

// DefaultComponents returns the extension set used when a declaration
// does not name its own. rust-src is required for editor tooling
// (RUST_SRC_PATH points into it) and rustfmt for formatting.
func DefaultComponents() []string {
	return []string{"rust-src", "rustfmt"}
}

// DefaultSpec returns the spec used when no declaration file is
// present: latest stable with the default extension set.
func DefaultSpec() Spec {
	return Spec{
		Channel:    DefaultChannel,
		Components: DefaultComponents(),
	}
}

// Resolved is the outcome of a resolution: the spec, where it came
// from, and its identity digest.
type Resolved struct {
	Spec Spec `cbor:"spec" json:"spec"`

	// Source is the path of the declaration file the spec was read
	// from, or SourceDefault when neither file existed.
	Source string `cbor:"source" json:"source"`

	// Identity is the BLAKE3 digest of the spec's canonical encoding.
	// Two resolutions with the same identity describe bit-identical
	// toolchains.
	Identity Identity `cbor:"identity" json:"identity"`
}

// Resolve produces the toolchain spec for a project directory by
// checking declaration files in priority order: rust-toolchain.toml,
// then rust-toolchain, then the built-in default. The first file
// present is authoritative — a malformed primary file is a fatal
// error even when a valid legacy file sits next to it.
func Resolve(dir string) (*Resolved, error) {
	tomlPath := filepath.Join(dir, TOMLFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		spec, err := parseTOMLFile(tomlPath)
		if err != nil {
			return nil, err
		}
		return finishResolve(spec, tomlPath)
	}

	legacyPath := filepath.Join(dir, LegacyFileName)
	if _, err := os.Stat(legacyPath); err == nil {
		spec, err := parseLegacyFile(legacyPath)
		if err != nil {
			return nil, err
		}
		return finishResolve(spec, legacyPath)
	}

	return finishResolve(DefaultSpec(), SourceDefault)
}

// finishResolve validates the channel and computes the identity
// digest. All resolution paths funnel through here so every Resolved
// carries a verified channel and a populated identity.
func finishResolve(spec Spec, source string) (*Resolved, error) {
	if err := ValidateChannel(spec.Channel); err != nil {
		if source != SourceDefault {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		return nil, err
	}

	identity, err := Identify(spec)
	if err != nil {
		return nil, err
	}

	return &Resolved{Spec: spec, Source: source, Identity: identity}, nil
}

// tomlFile mirrors the rust-toolchain.toml structure. Only the
// [toolchain] table is meaningful; unknown keys are ignored.
type tomlFile struct {
	Toolchain tomlToolchain `toml:"toolchain"`
}

type tomlToolchain struct {
	Channel    string   `toml:"channel"`
	Components []string `toml:"components"`
	Targets    []string `toml:"targets"`
	Profile    string   `toml:"profile"`
}

// parseTOMLFile reads a rust-toolchain.toml declaration. A file
// without an explicit component list gets the default extension set,
// matching what the legacy format always gets.
func parseTOMLFile(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Spec{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	declared := file.Toolchain
	if declared.Channel == "" {
		return Spec{}, fmt.Errorf("%s: [toolchain] table has no channel", path)
	}

	components := declared.Components
	if len(components) == 0 {
		components = DefaultComponents()
	}

	return Spec{
		Channel:    declared.Channel,
		Components: components,
		Targets:    declared.Targets,
		Profile:    declared.Profile,
	}, nil
}

// parseLegacyFile reads a legacy rust-toolchain declaration: the
// channel name on the first line, nothing else. The extension set is
// always the default — the legacy format has no way to name one.
func parseLegacyFile(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("reading %s: %w", path, err)
	}

	channel, _, _ := strings.Cut(string(data), "\n")
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return Spec{}, fmt.Errorf("%s: empty toolchain declaration", path)
	}

	return Spec{
		Channel:    channel,
		Components: DefaultComponents(),
	}, nil
}

// channelPattern matches the channel spellings rustup accepts:
// release channels with an optional date suffix, or an explicit
// version number.
var channelPattern = regexp.MustCompile(
	`^(stable|beta|nightly)(-\d{4}-\d{2}-\d{2})?$|^\d+\.\d+(\.\d+)?$`)

// ValidateChannel checks that a channel name is syntactically valid.
// It does not (and cannot, offline) check that the channel exists —
// a well-formed but unpublished version fails later at install time,
// surfaced by the installer.
func ValidateChannel(channel string) error {
	if channel == "" {
		return fmt.Errorf("empty toolchain channel")
	}
	if !channelPattern.MatchString(channel) {
		return fmt.Errorf("invalid toolchain channel %q (expected stable, beta, nightly, nightly-YYYY-MM-DD, or a version like 1.70.0)", channel)
	}
	return nil
}
