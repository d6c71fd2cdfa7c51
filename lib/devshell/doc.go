// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package devshell materializes the activation environment for a
// project: the environment variables, auxiliary package set, and
// shell aliases that accompany a resolved toolchain.
//
// Materialization is deterministic and stateless. A descriptor is
// built once per activation from static declarations (the resolved
// toolchain, optional ingot.yaml shell overrides, optional
// .ingot/aliases.jsonc alias overrides), never mutated, and discarded
// when the session ends. All rendering orders are sorted so identical
// inputs produce byte-identical output.
package devshell
