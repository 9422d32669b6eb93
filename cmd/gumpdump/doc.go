// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

// gumpdump decodes compiled dialog payloads and capture streams into
// a readable text form.
//
// In payload mode (the default), the input file is a single compiled
// payload; --encoding selects plain or packed. The output is a header
// line with the dialog identity, one line per token group in layout
// grammar, then the string table.
//
// In capture mode (--capture), the input is a CBOR capture stream as
// written by the capture package. Each record prints as a summary
// line; payload records are decoded and printed inline. A payload
// that fails to decode is annotated rather than aborting the dump,
// since the surrounding records are usually the interesting part when
// one payload is broken.
//
// Exit codes: 0 on success, 1 when the input fails to decode, 2 on
// usage errors.
package main
