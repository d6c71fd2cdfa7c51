// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package gitobject

import (
	"fmt"
	"os"
	"path/filepath"
)

// GitDirName is the repository metadata directory.
const GitDirName = ".git"

// Store is a git object database at a specific .git directory. All
// operations target this directory — there is no default.
type Store struct {
	gitDir string
}

// NewStore returns a Store targeting the given .git directory.
func NewStore(gitDir string) *Store {
	return &Store{gitDir: gitDir}
}

// GitDir returns the .git directory the store targets.
func (s *Store) GitDir() string {
	return s.gitDir
}

// Init creates the repository skeleton under dir: .git/, .git/objects/,
// .git/refs/, and a HEAD pointing at refs/heads/master. Fails if a
// .git directory already exists.
func Init(dir string) error {
	gitDir := filepath.Join(dir, GitDirName)
	if _, err := os.Stat(gitDir); err == nil {
		return fmt.Errorf("%s already exists", gitDir)
	}

	for _, subdir := range []string{"", "objects", "refs"} {
		if err := os.Mkdir(filepath.Join(gitDir, subdir), 0o755); err != nil {
			return fmt.Errorf("initializing repository: %w", err)
		}
	}

	headPath := filepath.Join(gitDir, "HEAD")
	if err := os.WriteFile(headPath, []byte("ref: refs/heads/master\n"), 0o644); err != nil {
		return fmt.Errorf("writing HEAD: %w", err)
	}
	return nil
}

// ValidName reports whether name is a plausible object name: exactly
// 40 lowercase-insensitive hex characters. This is a syntax check
// only — a valid name may still name no object in the database.
func ValidName(name string) bool {
	if len(name) != 40 {
		return false
	}
	for _, c := range name {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// objectPath returns the loose-object path for an object name: the
// first two hex characters fan out into a directory, the remaining 38
// are the file name.
func (s *Store) objectPath(name string) string {
	return filepath.Join(s.gitDir, "objects", name[:2], name[2:])
}
