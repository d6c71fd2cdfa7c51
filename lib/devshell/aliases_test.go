// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package devshell

import (
	"os"
	"path/filepath"
	"testing"
)

// writeAliasFile writes .ingot/aliases.jsonc under dir.
func writeAliasFile(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(aliasFileName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing alias file: %v", err)
	}
}

func TestLoadAliases_Defaults(t *testing.T) {
	t.Parallel()

	aliases, err := loadAliases(t.TempDir())
	if err != nil {
		t.Fatalf("loadAliases: %v", err)
	}
	if aliases["b"] != "cargo build" {
		t.Errorf("alias b = %q, want %q", aliases["b"], "cargo build")
	}
	if aliases["t"] != "cargo test" {
		t.Errorf("alias t = %q, want %q", aliases["t"], "cargo test")
	}
}

func TestLoadAliases_JSONCOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAliasFile(t, dir, `{
	// run the fast test subset only
	"t": "cargo test --lib",
	/* watch mode needs cargo-watch installed */
	"w": "cargo watch -x check",
	"lint": "", // drop the default clippy alias
}`)

	aliases, err := loadAliases(dir)
	if err != nil {
		t.Fatalf("loadAliases: %v", err)
	}

	if aliases["t"] != "cargo test --lib" {
		t.Errorf("alias t = %q, want override", aliases["t"])
	}
	if aliases["w"] != "cargo watch -x check" {
		t.Errorf("alias w = %q, want new entry", aliases["w"])
	}
	if _, exists := aliases["lint"]; exists {
		t.Error("alias lint still present, want removed by empty override")
	}
	// Untouched defaults survive.
	if aliases["b"] != "cargo build" {
		t.Errorf("alias b = %q, want default preserved", aliases["b"])
	}
}

func TestLoadAliases_MalformedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAliasFile(t, dir, `{"t": ["not", "a", "string"]}`)

	if _, err := loadAliases(dir); err == nil {
		t.Fatal("expected error for malformed alias file")
	}
}
