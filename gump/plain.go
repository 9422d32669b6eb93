// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// plainWriter renders the classic ASCII token layout. Every fragment
// it emits is dictated by the grammar legacy clients parse: groups are
// "{ " ... " }", integers get a leading space, literal text is
// @-delimited, attributes are "name=value" with no space around the
// equals sign.
type plainWriter struct {
	dialog      *Dialog
	layout      bytes.Buffer
	strings     []string
	scratch     []byte
	textEntries int
	switches    int
}

func newPlainWriter(dialog *Dialog) *plainWriter {
	return &plainWriter{dialog: dialog, scratch: make([]byte, 0, 12)}
}

func (w *plainWriter) begin() { w.layout.WriteString("{ ") }

func (w *plainWriter) end() { w.layout.WriteString(" }") }

func (w *plainWriter) op(code opcode) { w.layout.WriteString(code.keyword()) }

func (w *plainWriter) num(value int) {
	w.layout.WriteByte(' ')
	w.layout.Write(strconv.AppendInt(w.scratch[:0], int64(value), 10))
}

func (w *plainWriter) flag(value bool) {
	if value {
		w.layout.WriteString(" 1")
	} else {
		w.layout.WriteString(" 0")
	}
}

func (w *plainWriter) text(value string) {
	w.layout.WriteString(" @")
	w.layout.WriteString(value)
	w.layout.WriteByte('@')
}

func (w *plainWriter) attr(id attribute, value int) {
	w.layout.WriteByte(' ')
	w.layout.WriteString(id.name())
	w.layout.WriteByte('=')
	w.layout.Write(strconv.AppendInt(w.scratch[:0], int64(value), 10))
}

func (w *plainWriter) countSwitch() { w.switches++ }

func (w *plainWriter) countTextEntry() { w.textEntries++ }

func (w *plainWriter) setStrings(values []string) { w.strings = values }

func (w *plainWriter) finish() (*Compiled, error) {
	if w.layout.Len() > math.MaxUint16 {
		return nil, fmt.Errorf("plain layout is %d bytes, limit %d", w.layout.Len(), math.MaxUint16)
	}
	if len(w.strings) > math.MaxUint16 {
		return nil, fmt.Errorf("string table has %d entries, limit %d", len(w.strings), math.MaxUint16)
	}

	var payload bytes.Buffer
	payload.Grow(16 + 2 + w.layout.Len() + 2 + 32*len(w.strings))
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
	putU16(uint16(w.layout.Len()))
	payload.Write(w.layout.Bytes())
	putU16(uint16(len(w.strings)))
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
		Encoding:    EncodingPlain,
		Payload:     payload.Bytes(),
		TextEntries: w.textEntries,
		Switches:    w.switches,
	}, nil
}
