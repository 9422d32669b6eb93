// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// typeDomainKey is the 32-byte key for BLAKE3 keyed hashing of dialog
// kind names. The byte values are the ASCII encoding of the domain
// name, zero-padded to 32 bytes; readable ASCII keeps the key
// inspectable in hex dumps without costing any hash property. Changing
// the key changes every type id on the wire, so it is fixed for the
// life of the protocol.
var typeDomainKey = [32]byte{
	'u', 'o', 'w', 'i', 'r', 'e', '.', 'g', 'u', 'm', 'p', '.',
	't', 'y', 'p', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// TypeID derives the wire type id for a dialog kind name: the first
// four bytes, big-endian, of the BLAKE3 keyed hash of the name under
// the gump type domain key. The derivation is deterministic across
// processes and platforms, so the id a reply carries always matches
// the id the dialog was sent with, whichever process sent it.
//
// Distinct kinds are expected, not guaranteed, to produce distinct
// ids. A collision between two kinds an application actually uses
// would misroute replies between them; with a few hundred kinds the
// chance is negligible, and the application is free to pick different
// names if it ever observes one.
func TypeID(kind string) uint32 {
	hasher, err := blake3.NewKeyed(typeDomainKey[:])
	if err != nil {
		panic("gump: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(kind))
	return binary.BigEndian.Uint32(hasher.Sum(nil))
}
