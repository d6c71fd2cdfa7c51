// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package plumbing implements the git object-database commands: init,
// cat-file, hash-object, and ls-tree. They operate on the .git
// directory of the current working directory, exactly like their git
// counterparts, and carry git's exit-code contract: 128 for an
// invalid object name, 1 for declared-but-unimplemented modes.
package plumbing
