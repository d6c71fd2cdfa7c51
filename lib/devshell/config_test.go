// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package devshell

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(config.Shell.Env) != 0 || len(config.Shell.Packages) != 0 {
		t.Errorf("missing file should yield zero config, got %+v", config)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("shell: [not: a: map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadConfig_ShellSection(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `
shell:
  env:
    RUST_BACKTRACE: "1"
  packages:
    - sqlite
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	config, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := config.Shell.Env["RUST_BACKTRACE"]; got != "1" {
		t.Errorf("RUST_BACKTRACE = %q, want %q", got, "1")
	}
	if len(config.Shell.Packages) != 1 || config.Shell.Packages[0] != "sqlite" {
		t.Errorf("Packages = %v, want [sqlite]", config.Shell.Packages)
	}
}
