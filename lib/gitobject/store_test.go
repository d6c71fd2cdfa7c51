// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package gitobject

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// newTestStore initializes a repository in a temp directory and
// returns its store plus the work-tree path.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return NewStore(filepath.Join(dir, GitDirName)), dir
}

// storeObject writes a loose object of the given type directly into
// the database and returns its name. Used to construct tree and
// commit fixtures without going through porcelain.
func storeObject(t *testing.T, store *Store, objectType Type, content []byte) string {
	t.Helper()

	encoded := fmt.Sprintf("%s %d\x00", objectType, len(content))
	hasher := sha1.New()
	hasher.Write([]byte(encoded))
	hasher.Write(content)
	name := hex.EncodeToString(hasher.Sum(nil))

	var compressed bytes.Buffer
	writer := zlib.NewWriter(&compressed)
	writer.Write([]byte(encoded))
	writer.Write(content)
	if err := writer.Close(); err != nil {
		t.Fatalf("compressing fixture object: %v", err)
	}

	path := store.objectPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, compressed.Bytes(), 0o444); err != nil {
		t.Fatalf("writing fixture object: %v", err)
	}
	return name
}

func TestInit_Layout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, subdir := range []string{".git", ".git/objects", ".git/refs"} {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(subdir)))
		if err != nil {
			t.Fatalf("stat %s: %v", subdir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", subdir)
		}
	}

	head, err := os.ReadFile(filepath.Join(dir, ".git", "HEAD"))
	if err != nil {
		t.Fatalf("reading HEAD: %v", err)
	}
	if string(head) != "ref: refs/heads/master\n" {
		t.Errorf("HEAD = %q, want %q", head, "ref: refs/heads/master\n")
	}
}

func TestInit_AlreadyInitialized(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if err := Init(dir); err == nil {
		t.Fatal("expected error re-initializing an existing repository")
	}
}

func TestValidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase hex", input: "3b18e512dba79e4c8300dd08aeb37f8e728b8dad", want: true},
		{name: "uppercase hex", input: "3B18E512DBA79E4C8300DD08AEB37F8E728B8DAD", want: true},
		{name: "too short", input: "3b18e512", want: false},
		{name: "too long", input: "3b18e512dba79e4c8300dd08aeb37f8e728b8dad0", want: false},
		{name: "non-hex character", input: "3b18e512dba79e4c8300dd08aeb37f8e728b8daz", want: false},
		{name: "empty", input: "", want: false},
		{name: "ref name", input: "refs/heads/master", want: false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidName(testCase.input); got != testCase.want {
				t.Errorf("ValidName(%q) = %v, want %v", testCase.input, got, testCase.want)
			}
		})
	}
}
