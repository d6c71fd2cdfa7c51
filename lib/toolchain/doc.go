// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolchain resolves a Rust toolchain specification for a
// project directory. Resolution is a single deterministic lookup
// chain with no retries and no fallback recovery:
//
//  1. rust-toolchain.toml — the structured declaration format
//     ([toolchain] table with channel, components, targets, profile)
//  2. rust-toolchain — the legacy format (bare channel string)
//  3. built-in default — latest stable with rust-src and rustfmt
//
// The first file present wins. Re-resolving with identical declaration
// inputs yields an identical spec and therefore an identical identity
// digest; this is the entire reproducibility contract. Whether the
// resolved channel can actually be installed is the installer's
// (rustup's) problem — this package never touches the network.
//
// A resolved spec can be pinned to disk (.ingot/toolchain.pin) so
// later invocations can detect drift between the pinned toolchain and
// what the declaration files currently say.
package toolchain
