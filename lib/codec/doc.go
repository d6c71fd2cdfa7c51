// Copyright 2026 The Ingot Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Ingot's canonical CBOR encoding.
//
// Toolchain identity digests and pin records both require that the
// same logical data always encodes to the same bytes, so the encoder
// is configured for Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. The decoder accepts standard CBOR and ignores unknown fields
// for forward compatibility.
package codec
