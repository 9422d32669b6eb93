// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/uoforge/uowire/capture"
)

// Registry tracks which dialogs are outstanding on which connection
// so that client replies can be routed back to the dialog that asked.
// Sending through the registry compiles for the connection's
// negotiated encoding, transmits, and records the dialog as pending;
// a reply dispatches to the dialog's OnReply callback and drops it
// from the pending set.
//
// The registry is safe for concurrent use. Callbacks run without the
// registry lock held, so a callback may freely send follow-up dialogs
// through the same registry.
type Registry struct {
	logger *slog.Logger
	ring   *capture.Ring

	mu      sync.Mutex
	pending map[Conn][]*Dialog
}

// NewRegistry creates a registry. A nil logger discards; a nil ring
// disables protocol capture.
func NewRegistry(logger *slog.Logger, ring *capture.Ring) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		logger:  logger,
		ring:    ring,
		pending: make(map[Conn][]*Dialog),
	}
}

// Send compiles the dialog for the connection's encoding, transmits
// the payload, and tracks the dialog as outstanding on that
// connection. Sending the same dialog to the same connection again
// tracks it again; the client treats a resend of a (serial, type id)
// pair as a replacement, and the first matching reply clears one
// tracking slot.
func (r *Registry) Send(conn Conn, dialog *Dialog) error {
	compiled, err := dialog.Compile(conn.Encoding())
	if err != nil {
		return err
	}
	if err := conn.Send(compiled.Payload); err != nil {
		return fmt.Errorf("sending dialog %q: %w", dialog.Kind(), err)
	}

	r.mu.Lock()
	r.pending[conn] = append(r.pending[conn], dialog)
	r.mu.Unlock()

	r.record(capture.Record{
		Time:     time.Now(),
		Kind:     capture.KindPayload,
		Conn:     connLabel(conn),
		Serial:   dialog.Serial(),
		TypeID:   dialog.TypeID(),
		Encoding: compiled.Encoding.String(),
		Payload:  compiled.Payload,
	})
	r.logger.Debug("dialog sent",
		"kind", dialog.Kind(),
		"serial", dialog.Serial(),
		"encoding", compiled.Encoding.String(),
		"bytes", len(compiled.Payload),
		"switches", compiled.Switches,
		"text_entries", compiled.TextEntries)
	return nil
}

// Dispatch routes a reply to the outstanding dialog matching (serial,
// typeID) on the connection, removes it from the pending set, and
// invokes its OnReply callback. Returns false when no dialog matches:
// a late reply for a dialog the connection already closed, or a
// forged one; either way it is absorbed, not an error. A nil reply is
// treated as a dismissal (button zero, nothing toggled, nothing
// typed).
func (r *Registry) Dispatch(conn Conn, serial, typeID uint32, reply *Reply) bool {
	var matched *Dialog
	r.mu.Lock()
	list := r.pending[conn]
	for i, dialog := range list {
		if dialog.Serial() == serial && dialog.TypeID() == typeID {
			matched = dialog
			r.pending[conn] = slices.Delete(list, i, i+1)
			if len(r.pending[conn]) == 0 {
				delete(r.pending, conn)
			}
			break
		}
	}
	r.mu.Unlock()

	if matched == nil {
		r.logger.Debug("reply for unknown dialog",
			"serial", serial,
			"type_id", typeID)
		return false
	}
	if reply == nil {
		reply = NewReply(0, nil, nil)
	}

	texts := reply.TextEntries()
	captureTexts := make([]capture.Text, len(texts))
	for i, relay := range texts {
		captureTexts[i] = capture.Text{EntryID: relay.EntryID, Text: relay.Text}
	}
	r.record(capture.Record{
		Time:     time.Now(),
		Kind:     capture.KindReply,
		Conn:     connLabel(conn),
		Serial:   serial,
		TypeID:   typeID,
		ButtonID: reply.ButtonID(),
		Switches: reply.Switches(),
		Texts:    captureTexts,
	})
	r.logger.Debug("dialog reply",
		"kind", matched.Kind(),
		"serial", serial,
		"button_id", reply.ButtonID())

	if matched.OnReply != nil {
		matched.OnReply(conn, reply)
	}
	return true
}

// CloseConn drops every dialog outstanding on the connection,
// invoking each dialog's OnClosed callback in send order. Call it
// when the transport loses the connection; replies arriving for the
// connection afterwards dispatch as unknown.
func (r *Registry) CloseConn(conn Conn) {
	r.mu.Lock()
	dialogs := r.pending[conn]
	delete(r.pending, conn)
	r.mu.Unlock()

	for _, dialog := range dialogs {
		r.record(capture.Record{
			Time:   time.Now(),
			Kind:   capture.KindClosed,
			Conn:   connLabel(conn),
			Serial: dialog.Serial(),
			TypeID: dialog.TypeID(),
		})
		if dialog.OnClosed != nil {
			dialog.OnClosed(conn)
		}
	}
	if len(dialogs) > 0 {
		r.logger.Debug("connection closed",
			"outstanding", len(dialogs))
	}
}

// Pending returns how many dialogs are outstanding on the connection.
func (r *Registry) Pending(conn Conn) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending[conn])
}

func (r *Registry) record(record capture.Record) {
	if r.ring != nil {
		r.ring.Add(record)
	}
}

// connLabel names a connection for logs and capture records: the
// connection's own String if it has one, else its pointer identity.
func connLabel(conn Conn) string {
	if stringer, ok := conn.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%p", conn)
}
