// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import (
	"reflect"
	"slices"
	"testing"
)

// fullDialog builds a dialog exercising every entry variant, every
// field shape, and all four display flags.
func fullDialog(t *testing.T) *Dialog {
	t.Helper()
	dialog := NewDialog(NewSerialAllocator(), "kitchen-sink", 25, -50)
	dialog.SetDragable(false)
	dialog.SetClosable(false)
	dialog.SetDisposable(false)
	dialog.SetResizable(false)

	dialog.AddBackground(0, 0, 5054, 420, 280)
	dialog.AddAlphaRegion(10, 10, 400, 260)
	dialog.AddPage(0)
	dialog.AddImage(20, 20, 100, 0)
	dialog.AddImage(60, 20, 100, 37)
	dialog.AddImageTiled(100, 20, 64, 64, 2624)
	dialog.AddItem(180, 20, 3823, 0)
	dialog.AddItem(220, 20, 3823, 44)
	dialog.AddLabel(20, 100, 1152, "Hello")
	dialog.AddLabelCropped(20, 120, 120, 18, 33, "Søren's test™")
	dialog.AddHTML(20, 140, 300, 60, "<center>markup</center>", true, false)
	dialog.AddHTMLLocalized(20, 200, 300, 20, 1011000, false, true)
	dialog.AddHTMLLocalizedColor(20, 220, 300, 20, 1011001, 32767, true, false)
	dialog.AddHTMLLocalizedArgs(20, 240, 300, 20, 1011002, "first arg", 0x7FFF, false, false)
	dialog.AddGroup(1)
	dialog.AddRadio(340, 20, 208, 209, true, 10)
	dialog.AddRadio(340, 50, 208, 209, false, 11)
	dialog.AddCheck(340, 80, 210, 211, true, 12)
	dialog.AddTextEntry(340, 110, 70, 20, 0, 1, "type here")
	dialog.AddTextEntryLimited(340, 140, 70, 20, 0, 2, "bounded", 16)
	dialog.AddButton(340, 170, 4005, 4007, 1, ButtonTypeReply, 0)
	dialog.AddButton(340, 200, 4014, 4016, 0, ButtonTypePage, 2)
	dialog.AddImageTiledButton(340, 230, 4005, 4007, 3, ButtonTypeReply, 0, 5, 0, 80, 40, 0)
	dialog.AddTooltip(1042971)
	dialog.AddItemProperty(0x40000123)
	return dialog
}

func TestEncodingsDecodeIdentically(t *testing.T) {
	t.Parallel()
	dialog := fullDialog(t)

	plainCompiled, err := dialog.Compile(EncodingPlain)
	if err != nil {
		t.Fatalf("Compile(plain): %v", err)
	}
	packedCompiled, err := dialog.Compile(EncodingPacked)
	if err != nil {
		t.Fatalf("Compile(packed): %v", err)
	}

	plain, err := DecodePlain(plainCompiled.Payload)
	if err != nil {
		t.Fatalf("DecodePlain: %v", err)
	}
	packed, err := DecodePacked(packedCompiled.Payload)
	if err != nil {
		t.Fatalf("DecodePacked: %v", err)
	}

	if plain.Serial != packed.Serial || plain.Serial != dialog.Serial() {
		t.Errorf("serial: plain %d, packed %d, dialog %d", plain.Serial, packed.Serial, dialog.Serial())
	}
	if plain.TypeID != packed.TypeID || plain.TypeID != dialog.TypeID() {
		t.Errorf("type id: plain %#x, packed %#x, dialog %#x", plain.TypeID, packed.TypeID, dialog.TypeID())
	}
	if plain.X != packed.X || plain.Y != packed.Y {
		t.Errorf("position: plain (%d, %d), packed (%d, %d)", plain.X, plain.Y, packed.X, packed.Y)
	}
	if len(plain.Groups) != len(packed.Groups) {
		t.Fatalf("group count: plain %d, packed %d", len(plain.Groups), len(packed.Groups))
	}
	for i := range plain.Groups {
		if !reflect.DeepEqual(plain.Groups[i], packed.Groups[i]) {
			t.Errorf("group %d differs:\nplain  %v\npacked %v", i, plain.Groups[i], packed.Groups[i])
		}
	}
	if !slices.Equal(plain.Strings, packed.Strings) {
		t.Errorf("string tables differ:\nplain  %q\npacked %q", plain.Strings, packed.Strings)
	}
	// No entry splices extra groups here, so both derivations of the
	// entry count agree with the dialog.
	if plain.EntryCount != packed.EntryCount || packed.EntryCount != len(dialog.Entries()) {
		t.Errorf("entry count: plain %d, packed %d, dialog %d",
			plain.EntryCount, packed.EntryCount, len(dialog.Entries()))
	}
}

func TestEntryCountDivergesOnTooltipSplice(t *testing.T) {
	t.Parallel()
	dialog := NewDialog(NewSerialAllocator(), "spliced", 0, 0)
	dialog.AddImageTiledButton(10, 20, 4005, 4007, 3, ButtonTypeReply, 0, 5, 0, 80, 40, 1042971)

	plainCompiled, err := dialog.Compile(EncodingPlain)
	if err != nil {
		t.Fatalf("Compile(plain): %v", err)
	}
	packedCompiled, err := dialog.Compile(EncodingPacked)
	if err != nil {
		t.Fatalf("Compile(packed): %v", err)
	}

	plain, err := DecodePlain(plainCompiled.Payload)
	if err != nil {
		t.Fatalf("DecodePlain: %v", err)
	}
	packed, err := DecodePacked(packedCompiled.Payload)
	if err != nil {
		t.Fatalf("DecodePacked: %v", err)
	}

	// One widget, two groups: the tiled button splices a sibling
	// tooltip group. The packed header counts widgets; the plain
	// derivation counts groups.
	if len(plain.Groups) != 2 || len(packed.Groups) != 2 {
		t.Fatalf("group counts: plain %d, packed %d, want 2 and 2", len(plain.Groups), len(packed.Groups))
	}
	if packed.EntryCount != 1 {
		t.Errorf("packed EntryCount: got %d, want 1", packed.EntryCount)
	}
	if plain.EntryCount != 2 {
		t.Errorf("plain EntryCount: got %d, want 2", plain.EntryCount)
	}
	if got := packed.Groups[1].Keyword; got != "tooltip" {
		t.Errorf("spliced group keyword: got %q, want %q", got, "tooltip")
	}
}

func TestDecodedGroupRendersPlainSpelling(t *testing.T) {
	t.Parallel()
	dialog := NewDialog(NewSerialAllocator(), "spelling", 0, 0)
	dialog.AddButton(10, 20, 4005, 4007, 1, ButtonTypeReply, 0)

	compiled, err := dialog.Compile(EncodingPacked)
	if err != nil {
		t.Fatalf("Compile(packed): %v", err)
	}
	payload, err := DecodePacked(compiled.Payload)
	if err != nil {
		t.Fatalf("DecodePacked: %v", err)
	}

	if len(payload.Groups) != 1 {
		t.Fatalf("groups: got %d, want 1", len(payload.Groups))
	}
	want := "{ button 10 20 4005 4007 1 0 1 }"
	if got := payload.Groups[0].String(); got != want {
		t.Errorf("Group.String: got %q, want %q", got, want)
	}
}

func TestStringTableUnicodeRoundTrip(t *testing.T) {
	t.Parallel()
	// Latin-1 accents, a BMP symbol, and an astral character that
	// needs a UTF-16 surrogate pair.
	texts := []string{"héllo", "Ultima™", "gold 𝄞 clef", ""}

	dialog := NewDialog(NewSerialAllocator(), "unicode", 0, 0)
	for i, text := range texts {
		dialog.AddLabel(10, 20*i, 0, text)
	}

	for _, mode := range []Encoding{EncodingPlain, EncodingPacked} {
		compiled, err := dialog.Compile(mode)
		if err != nil {
			t.Fatalf("Compile(%v): %v", mode, err)
		}
		decode := DecodePlain
		if mode == EncodingPacked {
			decode = DecodePacked
		}
		payload, err := decode(compiled.Payload)
		if err != nil {
			t.Fatalf("decode %v: %v", mode, err)
		}
		if !slices.Equal(payload.Strings, texts) {
			t.Errorf("%v strings: got %q, want %q", mode, payload.Strings, texts)
		}
	}
}
