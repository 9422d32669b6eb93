// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import "testing"

func TestTypeIDIsDeterministic(t *testing.T) {
	t.Parallel()
	kinds := []string{"", "vendor-buy", "quest-offer", "admin/reboot", "ütf-8 kind"}

	for _, kind := range kinds {
		first := TypeID(kind)
		second := TypeID(kind)
		if first != second {
			t.Errorf("TypeID(%q) not stable: got %#x then %#x", kind, first, second)
		}
	}
}

func TestTypeIDSeparatesKinds(t *testing.T) {
	t.Parallel()
	kinds := []string{"vendor-buy", "vendor-sell", "quest-offer", "bank", ""}

	ids := make(map[uint32]string, len(kinds))
	for _, kind := range kinds {
		id := TypeID(kind)
		if previous, collided := ids[id]; collided {
			t.Errorf("TypeID collision: %q and %q both map to %#x", previous, kind, id)
		}
		ids[id] = kind
	}
}
