// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import "slices"

// TextRelay is one typed-text pair from a reply: the entry id of a
// text-input widget and whatever the user left in it.
type TextRelay struct {
	EntryID int
	Text    string
}

// Reply is a client's structured response to a dialog: the pressed
// button, the toggle widgets that were on, and the typed text fields.
// It is assembled from fields the transport has already demarshalled;
// this layer adds no validation, because a reply that survived the
// envelope parse is structurally sound and any ids it carries are the
// application's to interpret.
//
// The queries are permissive: an id the dialog never emitted simply
// reads as "not found". The host is expected to bound-check the
// switch and text list lengths against the counts in [Compiled]
// before accepting a reply; beyond that, unknown ids are not
// corruption signals.
type Reply struct {
	buttonID int
	switches []int
	texts    []TextRelay
}

// NewReply assembles a reply from transport-demarshalled fields. The
// slices are copied. A buttonID of zero conventionally means the
// dialog was dismissed without an explicit action; this layer passes
// it through uninterpreted.
func NewReply(buttonID int, switches []int, texts []TextRelay) *Reply {
	return &Reply{
		buttonID: buttonID,
		switches: slices.Clone(switches),
		texts:    slices.Clone(texts),
	}
}

// ButtonID returns the pressed button's id, zero for a dismissal.
func (r *Reply) ButtonID() int { return r.buttonID }

// Switches returns a copy of the ids of toggle widgets that were on
// at reply time. No order is guaranteed.
func (r *Reply) Switches() []int { return slices.Clone(r.switches) }

// TextEntries returns a copy of the typed-text pairs in the order the
// client supplied them.
func (r *Reply) TextEntries() []TextRelay { return slices.Clone(r.texts) }

// IsSwitched reports whether the toggle widget with the given switch
// id was on.
func (r *Reply) IsSwitched(switchID int) bool {
	return slices.Contains(r.switches, switchID)
}

// GetTextEntry returns the typed text for an entry id, or nil if the
// reply carries none. Entry ids are expected but not guaranteed to be
// unique; duplicates resolve to the first occurrence.
func (r *Reply) GetTextEntry(entryID int) *TextRelay {
	for _, relay := range r.texts {
		if relay.EntryID == entryID {
			return &relay
		}
	}
	return nil
}
