// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. The same history always
// produces identical stream bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder. Unknown fields are ignored, so a newer
// tool reads an older stream and vice versa.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Microsecond epoch timestamps: deterministic, compact, and fine
	// enough to order records within one dispatch.
	encOptions.Time = cbor.TimeUnixMicro
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("capture: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("capture: CBOR decoder initialization failed: " + err.Error())
	}
}

// maxStreamRecords caps how many records ReadAll accepts from one
// stream, bounding allocation on a hostile or corrupt file.
const maxStreamRecords = 1 << 20

// WriteAll writes records to w as a CBOR stream, one record per data
// item with no framing around them.
func WriteAll(w io.Writer, records []Record) error {
	encoder := encMode.NewEncoder(w)
	for i, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
	}
	return nil
}

// ReadAll reads a CBOR record stream until end of input. A stream
// truncated mid-record is an error; an empty stream is zero records.
func ReadAll(r io.Reader) ([]Record, error) {
	decoder := decMode.NewDecoder(r)
	var records []Record
	for {
		var record Record
		if err := decoder.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("decoding record %d: %w", len(records), err)
		}
		if len(records) >= maxStreamRecords {
			return nil, fmt.Errorf("capture stream exceeds %d records", maxStreamRecords)
		}
		records = append(records, record)
	}
}
