// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"math"
	"sync"
	"testing"
)

func TestSerialAllocatorStartsAtOne(t *testing.T) {
	t.Parallel()
	allocator := NewSerialAllocator()

	if got := allocator.Next(); got != 1 {
		t.Errorf("first Next: got %d, want 1", got)
	}
	if got := allocator.Next(); got != 2 {
		t.Errorf("second Next: got %d, want 2", got)
	}
}

func TestSerialAllocatorSkipsZeroOnWraparound(t *testing.T) {
	t.Parallel()
	allocator := NewSerialAllocator()
	allocator.last.Store(math.MaxUint32 - 1)

	if got := allocator.Next(); got != math.MaxUint32 {
		t.Fatalf("Next before wrap: got %d, want %d", got, uint32(math.MaxUint32))
	}
	// The increment past MaxUint32 lands on zero, which is reserved
	// for "no response"; the allocator must skip to 1.
	if got := allocator.Next(); got != 1 {
		t.Errorf("Next after wrap: got %d, want 1", got)
	}
}

func TestSerialAllocatorConcurrentSerialsAreUnique(t *testing.T) {
	t.Parallel()
	allocator := NewSerialAllocator()

	const goroutines = 8
	const perGoroutine = 1000

	results := make([][]uint32, goroutines)
	var group sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		group.Add(1)
		go func(g int) {
			defer group.Done()
			serials := make([]uint32, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				serials = append(serials, allocator.Next())
			}
			results[g] = serials
		}(g)
	}
	group.Wait()

	seen := make(map[uint32]bool, goroutines*perGoroutine)
	for _, serials := range results {
		for _, serial := range serials {
			if serial == 0 {
				t.Fatal("allocator returned zero")
			}
			if seen[serial] {
				t.Fatalf("serial %d allocated twice", serial)
			}
			seen[serial] = true
		}
	}
}
