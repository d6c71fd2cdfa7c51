// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/ingot-dev/ingot/lib/codec"
)

// Pin record location, relative to the project directory.
const (
	pinDirName  = ".ingot"
	pinFileName = "toolchain.pin"
)

// Pin is the on-disk record of a resolved toolchain: deterministic
// CBOR, zstd-compressed. The record lets "toolchain status" report
// drift between what was last pinned and what the declaration files
// currently resolve to, without re-running the resolution that
// produced the pin.
type Pin struct {
	Spec     Spec     `cbor:"spec" json:"spec"`
	Source   string   `cbor:"source" json:"source"`
	Identity Identity `cbor:"identity" json:"identity"`

	// PinnedAt is when the record was written. Informational only —
	// it takes no part in identity comparison.
	PinnedAt time.Time `cbor:"pinned_at" json:"pinned_at"`
}

// pinEncoder and pinDecoder are reused across calls. zstd.Encoder and
// zstd.Decoder are safe for concurrent use.
var (
	pinEncoder *zstd.Encoder
	pinDecoder *zstd.Decoder
)

func init() {
	var err error
	pinEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("toolchain: zstd encoder initialization failed: " + err.Error())
	}

	pinDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("toolchain: zstd decoder initialization failed: " + err.Error())
	}
}

// PinPath returns the pin record path for a project directory.
func PinPath(dir string) string {
	return filepath.Join(dir, pinDirName, pinFileName)
}

// WritePin records a resolution at the project's pin path, creating
// the .ingot directory if needed. Returns the path written.
func WritePin(dir string, resolved *Resolved) (string, error) {
	record := Pin{
		Spec:     resolved.Spec,
		Source:   resolved.Source,
		Identity: resolved.Identity,
		PinnedAt: time.Now().UTC(),
	}

	encoded, err := codec.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encoding pin record: %w", err)
	}

	path := PinPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	compressed := pinEncoder.EncodeAll(encoded, nil)
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return "", fmt.Errorf("writing pin record: %w", err)
	}
	return path, nil
}

// ReadPin loads the pin record for a project directory. A missing
// record surfaces as an fs.ErrNotExist-wrapping error so callers can
// distinguish "never pinned" from a corrupt record.
func ReadPin(dir string) (*Pin, error) {
	path := PinPath(dir)
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pin record: %w", err)
	}

	encoded, err := pinDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: zstd decompress: %w", path, err)
	}

	var record Pin
	if err := codec.Unmarshal(encoded, &record); err != nil {
		return nil, fmt.Errorf("%s: decoding pin record: %w", path, err)
	}
	return &record, nil
}
