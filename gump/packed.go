// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// Packed layout token bytes. Group delimiters reuse the plain
// grammar's brace characters, which keeps hex dumps of inflated
// layouts readable; everything else is a tag byte followed by a
// fixed-width body. All values are protocol constants.
const (
	packedBegin byte = '{'
	packedEnd   byte = '}'

	packedTagOp   byte = 0x01 // u8 opcode id
	packedTagInt  byte = 0x02 // i32 big-endian
	packedTagText byte = 0x03 // u16 byte length + UTF-8 bytes
	packedTagAttr byte = 0x04 // u8 attribute id + i32 big-endian
)

// zlibWriters pools compressors across compiles. A zlib writer is
// expensive to construct relative to the small layouts it compresses,
// and compiles happen once per dialog per destination connection.
var zlibWriters = sync.Pool{
	New: func() any {
		return zlib.NewWriter(io.Discard)
	},
}

// compressLayout deflates the layout blob with zlib framing, the
// only compressed format the client generation that negotiates packed
// encoding can inflate.
func compressLayout(layout []byte) ([]byte, error) {
	var compressed bytes.Buffer
	compressor := zlibWriters.Get().(*zlib.Writer)
	compressor.Reset(&compressed)
	defer func() {
		compressor.Reset(io.Discard)
		zlibWriters.Put(compressor)
	}()

	if _, err := compressor.Write(layout); err != nil {
		return nil, fmt.Errorf("compressing layout: %w", err)
	}
	if err := compressor.Close(); err != nil {
		return nil, fmt.Errorf("compressing layout: %w", err)
	}
	return compressed.Bytes(), nil
}

// packedWriter renders the binary token layout and compresses it at
// finish. Append operations record the first failure and keep
// accepting input; finish reports it.
type packedWriter struct {
	dialog      *Dialog
	layout      bytes.Buffer
	strings     []string
	textEntries int
	switches    int
	err         error
}

func newPackedWriter(dialog *Dialog) *packedWriter {
	return &packedWriter{dialog: dialog}
}

func (w *packedWriter) begin() { w.layout.WriteByte(packedBegin) }

func (w *packedWriter) end() { w.layout.WriteByte(packedEnd) }

func (w *packedWriter) op(code opcode) {
	w.layout.WriteByte(packedTagOp)
	w.layout.WriteByte(byte(code))
}

func (w *packedWriter) num(value int) {
	var scratch [4]byte
	w.layout.WriteByte(packedTagInt)
	binary.BigEndian.PutUint32(scratch[:], uint32(int32(value)))
	w.layout.Write(scratch[:])
}

func (w *packedWriter) flag(value bool) {
	if value {
		w.num(1)
	} else {
		w.num(0)
	}
}

func (w *packedWriter) text(value string) {
	if len(value) > math.MaxUint16 {
		w.fail(fmt.Errorf("literal text field is %d bytes, limit %d", len(value), math.MaxUint16))
		return
	}
	var scratch [2]byte
	w.layout.WriteByte(packedTagText)
	binary.BigEndian.PutUint16(scratch[:], uint16(len(value)))
	w.layout.Write(scratch[:])
	w.layout.WriteString(value)
}

func (w *packedWriter) attr(id attribute, value int) {
	var scratch [4]byte
	w.layout.WriteByte(packedTagAttr)
	w.layout.WriteByte(byte(id))
	binary.BigEndian.PutUint32(scratch[:], uint32(int32(value)))
	w.layout.Write(scratch[:])
}

func (w *packedWriter) countSwitch() { w.switches++ }

func (w *packedWriter) countTextEntry() { w.textEntries++ }

func (w *packedWriter) setStrings(values []string) { w.strings = values }

func (w *packedWriter) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *packedWriter) finish() (*Compiled, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.layout.Len() > maxPackedLayoutLength {
		return nil, fmt.Errorf("packed layout is %d bytes, limit %d", w.layout.Len(), maxPackedLayoutLength)
	}
	// The count field is 32 bits wide, but the decoder caps string
	// tables at the plain encoding's limit so any dialog compilable
	// in one encoding is compilable in the other.
	if len(w.strings) > math.MaxUint16 {
		return nil, fmt.Errorf("string table has %d entries, limit %d", len(w.strings), math.MaxUint16)
	}

	compressed, err := compressLayout(w.layout.Bytes())
	if err != nil {
		return nil, err
	}

	var payload bytes.Buffer
	payload.Grow(28 + len(compressed) + 4 + 32*len(w.strings))
	var scratch [4]byte
	putU32 := func(value uint32) {
		binary.BigEndian.PutUint32(scratch[:], value)
		payload.Write(scratch[:])
	}
	putU16 := func(value uint16) {
		binary.BigEndian.PutUint16(scratch[:2], value)
		payload.Write(scratch[:2])
	}

	putU32(w.dialog.serial)
	putU32(w.dialog.typeID)
	putU32(uint32(int32(w.dialog.x)))
	putU32(uint32(int32(w.dialog.y)))
	putU32(uint32(len(w.dialog.entries)))
	putU32(uint32(w.layout.Len()))
	putU32(uint32(len(compressed)))
	payload.Write(compressed)
	putU32(uint32(len(w.strings)))
	for i, value := range w.strings {
		encoded, units, err := encodeUTF16(value)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", i, err)
		}
		if units > math.MaxUint16 {
			return nil, fmt.Errorf("string %d is %d UTF-16 units, limit %d", i, units, math.MaxUint16)
		}
		putU16(uint16(units))
		payload.Write(encoded)
	}

	return &Compiled{
		Encoding:    EncodingPacked,
		Payload:     payload.Bytes(),
		TextEntries: w.textEntries,
		Switches:    w.switches,
	}, nil
}
