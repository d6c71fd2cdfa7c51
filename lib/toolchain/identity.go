// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/ingot-dev/ingot/lib/codec"
)

// Identity is a 32-byte BLAKE3 digest of a spec's canonical CBOR
// encoding. Equal identities mean bit-identical toolchain specs.
type Identity [32]byte

// identityDomainKey is the BLAKE3 key for toolchain identity hashing.
// Domain separation ensures spec bytes never collide with digests
// computed in other contexts. The value is the ASCII domain name,
// zero-padded to 32 bytes, so it stays readable in hex dumps.
var identityDomainKey = [32]byte{
	'i', 'n', 'g', 'o', 't', '.', 't', 'o', 'o', 'l', 'c', 'h', 'a', 'i', 'n', '.',
	'i', 'd', 'e', 'n', 't', 'i', 't', 'y', 0, 0, 0, 0, 0, 0, 0, 0,
}

// Identify computes the identity digest of a spec. The spec is first
// encoded with deterministic CBOR (sorted keys, canonical integers),
// so field ordering in the source declaration cannot influence the
// digest.
func Identify(spec Spec) (Identity, error) {
	encoded, err := codec.Marshal(spec)
	if err != nil {
		return Identity{}, fmt.Errorf("encoding toolchain spec: %w", err)
	}

	hasher, err := blake3.NewKeyed(identityDomainKey[:])
	if err != nil {
		return Identity{}, fmt.Errorf("initializing identity hasher: %w", err)
	}
	hasher.Write(encoded)

	var digest Identity
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// String returns the hex-encoded digest. This is the canonical format
// used in pin records, CLI output, and logs.
func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler so identities
// serialize as hex strings in JSON and CBOR output.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseIdentity parses a hex-encoded identity digest. Returns an
// error if the string is not a valid 64-character hex encoding of
// 32 bytes.
func ParseIdentity(hexString string) (Identity, error) {
	var digest Identity
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing identity digest: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("identity digest is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}
