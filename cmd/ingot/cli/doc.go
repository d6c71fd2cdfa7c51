// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command-tree framework for the ingot binary:
// command dispatch, pflag-based flag binding from struct tags, help
// rendering, typo suggestions, JSON output support, and exit-code
// plumbing.
package cli
