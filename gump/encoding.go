// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import "fmt"

// Encoding selects one of the two on-wire representations of a
// compiled dialog. The value is a per-connection capability: older
// clients only understand the plain form, newer ones negotiate the
// packed form. The two encodings carry identical semantics.
type Encoding uint8

const (
	// EncodingPlain is the classic uncompressed ASCII token layout
	// with a trailing UTF-16 string table.
	EncodingPlain Encoding = 0

	// EncodingPacked is the binary token layout, zlib-compressed,
	// with the string table outside the compressed region.
	EncodingPacked Encoding = 1
)

// String returns "plain" or "packed".
func (e Encoding) String() string {
	switch e {
	case EncodingPlain:
		return "plain"
	case EncodingPacked:
		return "packed"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// ParseEncoding converts the textual encoding name used by CLI flags
// and capture records back into an [Encoding].
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "plain":
		return EncodingPlain, nil
	case "packed":
		return EncodingPacked, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q (want \"plain\" or \"packed\")", name)
	}
}
