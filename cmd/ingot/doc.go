// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Ingot is a workbench CLI for Rust development environments. It
// resolves a project's toolchain declaration (toolchain resolve,
// toolchain status), materializes a reproducible shell environment
// (env show, env hook), and provides git object-database plumbing
// (init, cat-file, hash-object, ls-tree).
package main
