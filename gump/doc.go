// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package gump implements the dialog ("gump") wire protocol: building a
// dialog as an ordered tree of typed widgets, compiling it into one of
// the two on-wire encodings the client generation negotiates, and
// decoding the client's reply into structured input.
//
// A [Dialog] owns an ordered entry list, a deduplicating string table,
// an identity (process-unique serial plus a type id derived from the
// dialog's logical kind), and four display flags. Entries are a closed
// set of widget variants ([Button], [Check], [Label], [HTML],
// [TextEntry], and the rest), each with a fixed field set and a single
// render implementation written against an encoding-agnostic writer.
// Convenience constructors ([Dialog.AddButton], [Dialog.AddLabel], ...)
// construct and attach in one call.
//
// [Dialog.Compile] walks the entry list once and produces a [Compiled]
// payload in either encoding:
//
//   - [EncodingPlain]: the classic ASCII token layout, each entry a
//     "{ keyword field field ... }" group, followed by a
//     length-prefixed UTF-16 string table.
//   - [EncodingPacked]: the same token stream as fixed-width binary
//     records, zlib-compressed, with uncompressed/compressed length
//     fields preceding the blob and the string table outside the
//     compressed region.
//
// Both encodings carry identical semantics: decoding either payload
// with [DecodePlain] or [DecodePacked] yields the same token groups in
// the same order. The decoders reject truncated, oversized, and
// malformed input; they exist for diagnostics and tests, since a
// server never consumes its own payloads in production.
//
// Replies arrive as already-demarshalled fields (pressed button id,
// switch ids, typed text per entry id) and are wrapped in a [Reply],
// whose queries are permissive: unknown ids are "not found", never
// errors. A [Registry] tracks outstanding dialogs per connection,
// routes replies to the owning dialog's callback, and optionally
// appends protocol records to a capture ring.
//
// Dialogs are not internally synchronized. Build a dialog on one
// goroutine, then compile it from as many goroutines as there are
// destination connections: compilation never mutates dialog state
// because free-form text is interned when an entry is attached, not
// when it renders. The [SerialAllocator] is the only shared-mutable
// piece and is atomic.
package gump
