// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package devshell

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// aliasFileName is the optional alias override file, relative to the
// project directory. Aliases are developer-authored and tend to carry
// commentary, so the file is JSONC (JSON extended with // line
// comments, /* block comments */, and trailing commas).
const aliasFileName = ".ingot/aliases.jsonc"

// DefaultAliases returns the built-in interactive shell macros. The
// map is freshly allocated so callers can overlay it in place.
func DefaultAliases() map[string]string {
	return map[string]string{
		"b":    "cargo build",
		"c":    "cargo check",
		"t":    "cargo test",
		"r":    "cargo run",
		"fmt":  "cargo fmt --all",
		"lint": "cargo clippy --all-targets",
	}
}

// loadAliases returns the default aliases overlaid with the project's
// alias file, when present. An entry with an empty command removes
// the default of the same name.
func loadAliases(dir string) (map[string]string, error) {
	aliases := DefaultAliases()

	path := filepath.Join(dir, filepath.FromSlash(aliasFileName))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return aliases, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	overrides, err := parseAliases(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for name, command := range overrides {
		if command == "" {
			delete(aliases, name)
			continue
		}
		aliases[name] = command
	}
	return aliases, nil
}

// parseAliases strips JSONC comments and trailing commas from data,
// then unmarshals the result into a name → command map.
func parseAliases(data []byte) (map[string]string, error) {
	stripped := jsonc.ToJSON(data)

	var aliases map[string]string
	if err := json.Unmarshal(stripped, &aliases); err != nil {
		return nil, fmt.Errorf("parsing aliases: %w", err)
	}
	return aliases, nil
}
