// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package gitobject

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// TreeEntry is one record of a tree object.
type TreeEntry struct {
	// Mode is the entry's mode string as stored (no leading zeros,
	// e.g. "40000" for a subtree, "100644" for a regular file).
	Mode string

	// Type is derived from the mode: tree for directories, commit
	// for submodule gitlinks, blob otherwise.
	Type Type

	// Name is the entry's file name.
	Name string

	// Object is the 40-character hex name of the referenced object.
	Object string
}

// ReadTree opens an object and parses it as a tree. Entries come back
// in storage order (git keeps them name-sorted).
func (s *Store) ReadTree(name string) ([]TreeEntry, error) {
	object, err := s.Open(name)
	if err != nil {
		return nil, err
	}
	defer object.Close()

	if object.Type != TypeTree {
		return nil, fmt.Errorf("object %s is a %s, not a tree", name, object.Type)
	}

	return parseTree(object)
}

// parseTree decodes the binary tree encoding: a sequence of
// "<mode> <name>\0" records each followed by a raw 20-byte object id.
func parseTree(content io.Reader) ([]TreeEntry, error) {
	reader := bufio.NewReader(content)
	var entries []TreeEntry

	for {
		header, err := reader.ReadString(0)
		if err == io.EOF && header == "" {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading tree entry %d: %w", len(entries), err)
		}
		header = header[:len(header)-1]

		mode, entryName, found := strings.Cut(header, " ")
		if !found || mode == "" || entryName == "" {
			return nil, fmt.Errorf("malformed tree entry %q", header)
		}

		var rawID [20]byte
		if _, err := io.ReadFull(reader, rawID[:]); err != nil {
			return nil, fmt.Errorf("reading object id for %q: %w", entryName, err)
		}

		entries = append(entries, TreeEntry{
			Mode:   mode,
			Type:   typeForMode(mode),
			Name:   entryName,
			Object: hex.EncodeToString(rawID[:]),
		})
	}
}

// typeForMode maps a tree-entry mode to the referenced object's type.
func typeForMode(mode string) Type {
	switch mode {
	case "40000", "040000":
		return TypeTree
	case "160000":
		return TypeCommit
	default:
		return TypeBlob
	}
}
