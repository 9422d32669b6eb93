// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import "sync"

// DefaultRingCapacity is a reasonable ring size for a busy server:
// enough recent traffic to reconstruct what a misbehaving client saw
// without unbounded memory growth (payload records hold their full
// compiled bytes).
const DefaultRingCapacity = 1024

// Ring is a fixed-capacity circular buffer of protocol records. When
// full, a new record overwrites the oldest. All methods are safe for
// concurrent use.
type Ring struct {
	mutex   sync.Mutex
	records []Record
	// writePosition is the next slot to write (0 to capacity-1).
	writePosition int
	// totalAdded counts every record ever added. The ring currently
	// holds the last min(totalAdded, capacity) of them.
	totalAdded uint64
}

// NewRing creates a ring holding at most capacity records. Panics if
// capacity is not positive.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		panic("capture: ring capacity must be positive")
	}
	return &Ring{records: make([]Record, capacity)}
}

// Add appends a record, overwriting the oldest when the ring is full.
func (ring *Ring) Add(record Record) {
	ring.mutex.Lock()
	defer ring.mutex.Unlock()

	ring.records[ring.writePosition] = record
	ring.writePosition = (ring.writePosition + 1) % len(ring.records)
	ring.totalAdded++
}

// Records returns a copy of the retained records, oldest first.
func (ring *Ring) Records() []Record {
	ring.mutex.Lock()
	defer ring.mutex.Unlock()

	stored := ring.storedLocked()
	start := ring.writePosition - stored
	if start < 0 {
		start += len(ring.records)
	}
	result := make([]Record, 0, stored)
	for i := 0; i < stored; i++ {
		result = append(result, ring.records[(start+i)%len(ring.records)])
	}
	return result
}

// Len returns how many records the ring currently holds.
func (ring *Ring) Len() int {
	ring.mutex.Lock()
	defer ring.mutex.Unlock()
	return ring.storedLocked()
}

// Capacity returns the maximum number of records the ring holds.
func (ring *Ring) Capacity() int {
	return len(ring.records)
}

// Total returns how many records have ever been added, including ones
// already overwritten.
func (ring *Ring) Total() uint64 {
	ring.mutex.Lock()
	defer ring.mutex.Unlock()
	return ring.totalAdded
}

func (ring *Ring) storedLocked() int {
	if ring.totalAdded >= uint64(len(ring.records)) {
		return len(ring.records)
	}
	return int(ring.totalAdded)
}
