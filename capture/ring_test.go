// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"sync"
	"testing"
)

func TestRingAddAndRecords(t *testing.T) {
	t.Parallel()
	ring := NewRing(8)

	for serial := uint32(1); serial <= 3; serial++ {
		ring.Add(Record{Kind: KindPayload, Serial: serial})
	}

	records := ring.Records()
	if len(records) != 3 {
		t.Fatalf("Records: got %d, want 3", len(records))
	}
	for i, record := range records {
		if want := uint32(i + 1); record.Serial != want {
			t.Errorf("record %d serial: got %d, want %d", i, record.Serial, want)
		}
	}
	if got := ring.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if got := ring.Total(); got != 3 {
		t.Errorf("Total: got %d, want 3", got)
	}
}

func TestRingOverwritesOldest(t *testing.T) {
	t.Parallel()
	ring := NewRing(4)

	for serial := uint32(1); serial <= 10; serial++ {
		ring.Add(Record{Serial: serial})
	}

	records := ring.Records()
	if len(records) != 4 {
		t.Fatalf("Records: got %d, want 4", len(records))
	}
	// Only the last four survive, oldest first.
	for i, record := range records {
		if want := uint32(i + 7); record.Serial != want {
			t.Errorf("record %d serial: got %d, want %d", i, record.Serial, want)
		}
	}
	if got := ring.Len(); got != 4 {
		t.Errorf("Len: got %d, want 4", got)
	}
	if got := ring.Total(); got != 10 {
		t.Errorf("Total: got %d, want 10", got)
	}
}

func TestRingExactlyFull(t *testing.T) {
	t.Parallel()
	ring := NewRing(3)

	for serial := uint32(1); serial <= 3; serial++ {
		ring.Add(Record{Serial: serial})
	}

	records := ring.Records()
	if len(records) != 3 {
		t.Fatalf("Records: got %d, want 3", len(records))
	}
	if records[0].Serial != 1 || records[2].Serial != 3 {
		t.Errorf("order: got serials %d..%d, want 1..3", records[0].Serial, records[2].Serial)
	}
}

func TestRingEmpty(t *testing.T) {
	t.Parallel()
	ring := NewRing(16)

	if got := len(ring.Records()); got != 0 {
		t.Errorf("Records on empty ring: got %d, want 0", got)
	}
	if got := ring.Len(); got != 0 {
		t.Errorf("Len: got %d, want 0", got)
	}
	if got := ring.Capacity(); got != 16 {
		t.Errorf("Capacity: got %d, want 16", got)
	}
	if got := ring.Total(); got != 0 {
		t.Errorf("Total: got %d, want 0", got)
	}
}

func TestRingInvalidCapacityPanics(t *testing.T) {
	t.Parallel()
	for _, capacity := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewRing(%d): expected panic", capacity)
				}
			}()
			NewRing(capacity)
		}()
	}
}

func TestRingRecordsReturnsCopy(t *testing.T) {
	t.Parallel()
	ring := NewRing(4)
	ring.Add(Record{Serial: 1})

	records := ring.Records()
	records[0].Serial = 999

	if got := ring.Records()[0].Serial; got != 1 {
		t.Errorf("mutating the returned slice changed the ring: got serial %d", got)
	}
}

func TestRingConcurrentAdd(t *testing.T) {
	t.Parallel()
	ring := NewRing(64)

	const goroutines = 8
	const perGoroutine = 500

	var group sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		group.Add(1)
		go func() {
			defer group.Done()
			for i := 0; i < perGoroutine; i++ {
				ring.Add(Record{Kind: KindPayload})
			}
		}()
	}
	group.Wait()

	if got := ring.Total(); got != goroutines*perGoroutine {
		t.Errorf("Total: got %d, want %d", got, goroutines*perGoroutine)
	}
	if got := ring.Len(); got != 64 {
		t.Errorf("Len: got %d, want 64", got)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPayload, "payload"},
		{KindReply, "reply"},
		{KindClosed, "closed"},
		{Kind(9), "kind(9)"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String: got %q, want %q", uint8(test.kind), got, test.want)
		}
	}
}
