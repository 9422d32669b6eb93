// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package capture keeps a bounded in-memory history of dialog
// protocol traffic for diagnostics.
//
// A [Ring] holds the last N [Record] values (compiled payloads,
// decoded replies, connection closures), overwriting the oldest when
// full. The gump registry appends to a ring when given one; nothing
// in the send or dispatch path depends on capture being enabled.
//
// [WriteAll] and [ReadAll] move records between a ring and a file as
// a CBOR stream, one record per data item, encoded deterministically
// so identical histories produce identical files. The gumpdump tool
// reads these streams and pretty-prints them, decoding payload
// records inline.
package capture
