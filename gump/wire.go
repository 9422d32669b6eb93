// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// utf16BigEndian is the string-table text codec: UTF-16, big-endian,
// no byte order mark. The protocol fixes the byte order, so a BOM
// would just be two wasted bytes the client renders as garbage.
var utf16BigEndian = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// encodeUTF16 converts value to UTF-16BE, returning the encoded bytes
// and the length in 16-bit code units, which is what the wire length
// prefix counts (astral characters cost two units).
func encodeUTF16(value string) ([]byte, int, error) {
	encoded, err := utf16BigEndian.NewEncoder().Bytes([]byte(value))
	if err != nil {
		return nil, 0, fmt.Errorf("encoding string as UTF-16: %w", err)
	}
	return encoded, len(encoded) / 2, nil
}

// decodeUTF16 converts UTF-16BE bytes back to a string.
func decodeUTF16(data []byte) (string, error) {
	decoded, err := utf16BigEndian.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 string: %w", err)
	}
	return string(decoded), nil
}

// payloadReader walks a payload slice with bounds checking. Every
// read validates against the remaining length first, so truncated or
// hostile payloads surface as errors rather than slice panics.
type payloadReader struct {
	data   []byte
	offset int
}

func (r *payloadReader) remaining() int { return len(r.data) - r.offset }

// take consumes the next n bytes. The returned slice aliases the
// payload; callers that keep it must copy.
func (r *payloadReader) take(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("payload truncated: want %d bytes at offset %d, have %d", n, r.offset, r.remaining())
	}
	chunk := r.data[r.offset : r.offset+n]
	r.offset += n
	return chunk, nil
}

func (r *payloadReader) u8() (byte, error) {
	chunk, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return chunk[0], nil
}

func (r *payloadReader) u16() (uint16, error) {
	chunk, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(chunk[0])<<8 | uint16(chunk[1]), nil
}

func (r *payloadReader) u32() (uint32, error) {
	chunk, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(chunk[0])<<24 | uint32(chunk[1])<<16 | uint32(chunk[2])<<8 | uint32(chunk[3]), nil
}

func (r *payloadReader) i32() (int32, error) {
	value, err := r.u32()
	return int32(value), err
}

// readStringBlock parses count length-prefixed UTF-16BE strings, the
// shared trailing block of both payload encodings.
func readStringBlock(r *payloadReader, count int) ([]string, error) {
	if count > maxStringCount {
		return nil, fmt.Errorf("payload declares %d strings, limit %d", count, maxStringCount)
	}
	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		units, err := r.u16()
		if err != nil {
			return nil, fmt.Errorf("reading string %d length: %w", i, err)
		}
		encoded, err := r.take(int(units) * 2)
		if err != nil {
			return nil, fmt.Errorf("reading string %d: %w", i, err)
		}
		value, err := decodeUTF16(encoded)
		if err != nil {
			return nil, fmt.Errorf("reading string %d: %w", i, err)
		}
		values = append(values, value)
	}
	return values, nil
}
