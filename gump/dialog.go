// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"fmt"
	"slices"
)

// Conn is the transport-side collaborator a dialog is sent through.
// The transport owns the socket, the packet envelope, and the
// capability negotiation that fixes the connection's encoding; this
// package only asks which encoding to compile for and hands over the
// finished payload.
type Conn interface {
	// Encoding reports the layout encoding this connection negotiated.
	Encoding() Encoding

	// Send transmits a compiled dialog payload. The transport wraps
	// it in its own envelope.
	Send(payload []byte) error
}

// Compiled is the output of one [Dialog.Compile] call. The counter
// totals are compile-scoped outputs, not dialog state: the host uses
// them to bound-check the switch and text lists of the client's
// eventual reply.
type Compiled struct {
	// Encoding the payload was compiled for.
	Encoding Encoding

	// Payload is the complete wire payload: identity header, layout,
	// string table.
	Payload []byte

	// TextEntries is the number of text-input widgets rendered.
	TextEntries int

	// Switches is the number of toggle widgets rendered.
	Switches int
}

// Dialog is one instance of the composable widget tree sent to a
// client: an ordered entry sequence, a deduplicating string table,
// identity (serial and type id), screen position, and display flags.
//
// A dialog is not internally synchronized. Build it on a single
// goroutine; once construction is done, any number of goroutines may
// compile it concurrently (compilation never mutates dialog state).
// Do not mutate a dialog concurrently with a compile.
type Dialog struct {
	serial uint32
	typeID uint32
	kind   string
	x, y   int

	dragable   bool
	closable   bool
	disposable bool
	resizable  bool

	entries []Entry
	strings []string

	// OnReply, when non-nil, is invoked by [Registry.Dispatch] with
	// the originating connection and the decoded reply.
	OnReply func(conn Conn, reply *Reply)

	// OnClosed, when non-nil, is invoked by [Registry.CloseConn] when
	// the connection goes away with this dialog still outstanding.
	OnClosed func(conn Conn)
}

// NewDialog creates an empty dialog of the given logical kind at
// screen position (x, y). The serial comes from the allocator, the
// type id is derived from the kind name with [TypeID], and all four
// display flags start true. Panics if serials is nil.
func NewDialog(serials *SerialAllocator, kind string, x, y int) *Dialog {
	if serials == nil {
		panic("gump: NewDialog requires a serial allocator")
	}
	return &Dialog{
		serial:     serials.Next(),
		typeID:     TypeID(kind),
		kind:       kind,
		x:          x,
		y:          y,
		dragable:   true,
		closable:   true,
		disposable: true,
		resizable:  true,
	}
}

// Serial returns the process-unique, non-zero dialog serial.
func (d *Dialog) Serial() uint32 { return d.serial }

// TypeID returns the wire type id derived from the dialog's kind.
func (d *Dialog) TypeID() uint32 { return d.typeID }

// Kind returns the logical kind name the dialog was created with.
func (d *Dialog) Kind() string { return d.kind }

// X returns the initial horizontal screen position.
func (d *Dialog) X() int { return d.x }

// SetX sets the initial horizontal screen position.
func (d *Dialog) SetX(value int) { d.x = value }

// Y returns the initial vertical screen position.
func (d *Dialog) Y() int { return d.y }

// SetY sets the initial vertical screen position.
func (d *Dialog) SetY(value int) { d.y = value }

// Dragable reports whether the client may move the dialog. When
// false, the compiled layout carries a leading "nomove" group.
func (d *Dialog) Dragable() bool { return d.dragable }

// SetDragable sets the dragable flag.
func (d *Dialog) SetDragable(value bool) { d.dragable = value }

// Closable reports whether the client may dismiss the dialog with a
// right-click. When false, the layout carries a "noclose" group.
func (d *Dialog) Closable() bool { return d.closable }

// SetClosable sets the closable flag.
func (d *Dialog) SetClosable(value bool) { d.closable = value }

// Disposable reports whether the client may discard the dialog on its
// own (for example when the player dies). When false, the layout
// carries a "nodispose" group.
func (d *Dialog) Disposable() bool { return d.disposable }

// SetDisposable sets the disposable flag.
func (d *Dialog) SetDisposable(value bool) { d.disposable = value }

// Resizable reports whether the client may resize the dialog. When
// false, the layout carries a "noresize" group.
func (d *Dialog) Resizable() bool { return d.resizable }

// SetResizable sets the resizable flag.
func (d *Dialog) SetResizable(value bool) { d.resizable = value }

// Entries returns a copy of the entry sequence in render order.
func (d *Dialog) Entries() []Entry { return slices.Clone(d.entries) }

// Strings returns a copy of the string table in index order.
func (d *Dialog) Strings() []string { return slices.Clone(d.strings) }

// Add attaches an entry to the end of the sequence. Adding an entry
// the dialog already holds is a silent no-op; adding an entry owned
// by another dialog detaches it from that dialog first (an entry has
// exactly one owner). Adding nil does nothing.
func (d *Dialog) Add(entry Entry) {
	if entry == nil {
		return
	}
	if owner := entry.Parent(); owner == d {
		if slices.Contains(d.entries, entry) {
			return
		}
	} else if owner != nil {
		owner.Remove(entry)
	}
	entry.setParent(d)
	d.entries = append(d.entries, entry)
}

// Remove detaches an entry and drops it from the sequence. Removing
// nil or an entry the dialog does not hold is a silent no-op, so
// idempotent caller code stays clean.
func (d *Dialog) Remove(entry Entry) {
	if entry == nil {
		return
	}
	index := slices.Index(d.entries, entry)
	if index < 0 {
		return
	}
	d.entries = slices.Delete(d.entries, index, index+1)
	entry.setParent(nil)
}

// Intern returns the string table index for value, appending it if no
// equal string is present yet. Indices are positional and stable for
// the life of the dialog; the table only grows. Lookup is a linear
// scan; per-dialog string counts stay in the dozens.
func (d *Dialog) Intern(value string) int {
	for index, existing := range d.strings {
		if existing == value {
			return index
		}
	}
	d.strings = append(d.strings, value)
	return len(d.strings) - 1
}

// Compile walks the entry sequence once and produces the wire payload
// for the given encoding. Disabled display flags render first (nomove,
// noclose, nodispose, noresize, in that order), then every entry in
// sequence order wrapped in group delimiters, then the string table.
//
// Compile performs no I/O and does not mutate the dialog, so the same
// dialog may be compiled concurrently for connections with different
// encodings. Errors are size-limit and compressor failures only;
// rendering an entry that was never attached panics, since that is a
// construction bug rather than an operational failure.
func (d *Dialog) Compile(mode Encoding) (*Compiled, error) {
	var writer layoutWriter
	switch mode {
	case EncodingPlain:
		writer = newPlainWriter(d)
	case EncodingPacked:
		writer = newPackedWriter(d)
	default:
		return nil, fmt.Errorf("compiling dialog %q: unknown encoding %d", d.kind, uint8(mode))
	}

	flagGroup := func(disabled bool, code opcode) {
		if disabled {
			writer.begin()
			writer.op(code)
			writer.end()
		}
	}
	flagGroup(!d.dragable, opNoMove)
	flagGroup(!d.closable, opNoClose)
	flagGroup(!d.disposable, opNoDispose)
	flagGroup(!d.resizable, opNoResize)

	for _, entry := range d.entries {
		writer.begin()
		entry.appendTo(writer)
		writer.end()
	}
	writer.setStrings(d.strings)

	compiled, err := writer.finish()
	if err != nil {
		return nil, fmt.Errorf("compiling dialog %q: %w", d.kind, err)
	}
	return compiled, nil
}

// SendTo compiles the dialog for the connection's negotiated encoding
// and hands the payload to the connection. Callers that need reply
// routing should go through [Registry.Send] instead, which tracks the
// dialog as outstanding.
func (d *Dialog) SendTo(conn Conn) error {
	compiled, err := d.Compile(conn.Encoding())
	if err != nil {
		return err
	}
	if err := conn.Send(compiled.Payload); err != nil {
		return fmt.Errorf("sending dialog %q: %w", d.kind, err)
	}
	return nil
}
