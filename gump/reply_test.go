// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"slices"
	"testing"
)

func TestReplyQueries(t *testing.T) {
	t.Parallel()
	reply := NewReply(5, []int{2, 7}, []TextRelay{{EntryID: 3, Text: "abc"}})

	if got := reply.ButtonID(); got != 5 {
		t.Errorf("ButtonID: got %d, want 5", got)
	}
	if !reply.IsSwitched(2) || !reply.IsSwitched(7) {
		t.Error("IsSwitched: ids 2 and 7 should both read as on")
	}
	if reply.IsSwitched(9) {
		t.Error("IsSwitched(9): got true, want false")
	}
	if got := reply.Switches(); !slices.Equal(got, []int{2, 7}) {
		t.Errorf("Switches: got %v, want [2 7]", got)
	}

	relay := reply.GetTextEntry(3)
	if relay == nil || relay.Text != "abc" {
		t.Errorf("GetTextEntry(3): got %+v, want text %q", relay, "abc")
	}
	if got := reply.GetTextEntry(99); got != nil {
		t.Errorf("GetTextEntry(99): got %+v, want nil", got)
	}
}

func TestReplyDismissal(t *testing.T) {
	t.Parallel()
	reply := NewReply(0, nil, nil)

	if got := reply.ButtonID(); got != 0 {
		t.Errorf("ButtonID: got %d, want 0", got)
	}
	if reply.IsSwitched(1) {
		t.Error("IsSwitched on an empty reply: got true")
	}
	if got := reply.GetTextEntry(1); got != nil {
		t.Errorf("GetTextEntry on an empty reply: got %+v", got)
	}
	if got := len(reply.Switches()); got != 0 {
		t.Errorf("Switches: got %d entries, want 0", got)
	}
	if got := len(reply.TextEntries()); got != 0 {
		t.Errorf("TextEntries: got %d entries, want 0", got)
	}
}

func TestReplyCopiesConstructorSlices(t *testing.T) {
	t.Parallel()
	switches := []int{2, 7}
	texts := []TextRelay{{EntryID: 3, Text: "abc"}}
	reply := NewReply(5, switches, texts)

	switches[0] = 99
	texts[0].Text = "mutated"

	if !reply.IsSwitched(2) || reply.IsSwitched(99) {
		t.Error("mutating the caller's switch slice changed the reply")
	}
	if got := reply.GetTextEntry(3); got == nil || got.Text != "abc" {
		t.Errorf("mutating the caller's text slice changed the reply: got %+v", got)
	}
}

func TestReplyAccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	reply := NewReply(5, []int{2, 7}, []TextRelay{{EntryID: 3, Text: "abc"}})

	reply.Switches()[0] = 99
	reply.TextEntries()[0].Text = "mutated"
	reply.GetTextEntry(3).Text = "also mutated"

	if got := reply.Switches(); !slices.Equal(got, []int{2, 7}) {
		t.Errorf("Switches after mutation attempts: got %v, want [2 7]", got)
	}
	if got := reply.GetTextEntry(3); got.Text != "abc" {
		t.Errorf("GetTextEntry after mutation attempts: got %q, want %q", got.Text, "abc")
	}
}

func TestReplyGetTextEntryFirstMatch(t *testing.T) {
	t.Parallel()
	reply := NewReply(1, nil, []TextRelay{
		{EntryID: 3, Text: "first"},
		{EntryID: 3, Text: "second"},
	})

	if got := reply.GetTextEntry(3); got.Text != "first" {
		t.Errorf("GetTextEntry with duplicate ids: got %q, want %q", got.Text, "first")
	}
}
