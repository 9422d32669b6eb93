// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

// Entry is one widget within a [Dialog]. The variant set is closed:
// rendering dispatches through unexported methods, so every
// implementation lives in this package. An entry belongs to at most
// one dialog at a time; [Dialog.Add] transfers ownership (detaching
// from any prior dialog first) and [Dialog.Remove] releases it.
//
// Entry order within a dialog is significant: it is both the render
// order and the z-order for overlapping widgets.
type Entry interface {
	// Parent returns the dialog that currently owns the entry, or nil
	// for a detached entry.
	Parent() *Dialog

	// setParent records or clears the owning dialog. Variants that
	// carry free-form text intern it into the new owner here, which
	// is what keeps compilation read-only.
	setParent(d *Dialog)

	// appendTo renders the entry's token group body (keyword plus
	// fields). The surrounding begin/end delimiters belong to the
	// compiler.
	appendTo(w layoutWriter)
}

// entryBase carries the owner back-reference every variant embeds.
// The reference is non-owning: the dialog's entry sequence is the
// owner, and attach/detach through the dialog keeps both sides
// consistent.
type entryBase struct {
	parent *Dialog
}

// Parent returns the dialog that currently owns the entry, or nil.
func (b *entryBase) Parent() *Dialog { return b.parent }

func (b *entryBase) setParent(d *Dialog) { b.parent = d }

// intern resolves text through the owning dialog's string table. The
// text is already in the table by the time a render runs (attach and
// the text setters intern eagerly), so this is a lookup hit. A
// detached entry has no table to resolve against; that is a
// construction bug in the caller, so fail fast rather than embed a
// sentinel index.
func (b *entryBase) intern(text string) int {
	if b.parent == nil {
		panic("gump: entry rendered without an owning dialog")
	}
	return b.parent.Intern(text)
}

// internInto adds text to a dialog's string table when the entry is
// attached to one. Text setters call this so the table is complete
// before the first compile.
func (b *entryBase) internInto(text string) {
	if b.parent != nil {
		b.parent.Intern(text)
	}
}
