// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import "sync/atomic"

// SerialAllocator hands out process-unique, non-zero dialog serials.
// The wire protocol reserves serial zero to mean "no response", so the
// allocator skips it, including after 32-bit wraparound. Safe for
// concurrent use; construct one at process start and share it among
// everything that creates dialogs.
type SerialAllocator struct {
	last atomic.Uint32
}

// NewSerialAllocator returns an allocator whose first Next call
// returns 1.
func NewSerialAllocator() *SerialAllocator {
	return &SerialAllocator{}
}

// Next returns the next serial. Never returns zero.
func (a *SerialAllocator) Next() uint32 {
	for {
		serial := a.last.Add(1)
		if serial != 0 {
			return serial
		}
	}
}
