// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package gitobject reads and writes loose objects in a git object
// database, without shelling out to git. It implements exactly the
// loose-object format: zlib-compressed "<type> <size>\0" headers,
// SHA-1 content addressing, and the binary tree-entry encoding.
//
// The Store targets a specific .git directory — there is no default,
// callers always say which repository they mean (the same discipline
// as every path-scoped helper in this codebase). Packfiles, refs
// beyond HEAD initialization, and the index are out of scope: this is
// plumbing for inspecting and hashing workspace content, not a porcelain.
package gitobject
