// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

// layoutWriter is the encoding backend the compiler drives. Entry
// variants render themselves exactly once, against this interface, and
// never see which encoding is active; [plainWriter] and [packedWriter]
// are the two implementations.
//
// The append operations cannot fail: a backend that hits a size limit
// records a sticky error and reports it from finish, which keeps the
// variant render code free of error plumbing (neither grammar has a
// recoverable mid-layout failure anyway).
type layoutWriter interface {
	// begin opens a token group. Every entry renders inside exactly
	// one begin/end pair, except the tooltip splice in
	// [ImageTiledButton], which closes and reopens the group itself.
	begin()
	end()

	// op appends the group's keyword. First token after begin.
	op(code opcode)

	// num appends an integer field.
	num(value int)

	// flag appends a boolean field, encoded as integer 1 or 0 in both
	// encodings so the decoded token streams compare equal.
	flag(value bool)

	// text appends a literal free-form text field. Only the localized
	// HTML args form carries one; everything else free-form goes
	// through the string table.
	text(value string)

	// attr appends a named attribute field (today always hue).
	attr(id attribute, value int)

	// countSwitch and countTextEntry bump the running totals the
	// envelope needs. Toggle and text-input variants call them as a
	// side effect of rendering.
	countSwitch()
	countTextEntry()

	// setStrings hands over the dialog's string table for the
	// trailing string block. Called once, after the last entry.
	setStrings(values []string)

	// finish assembles the payload and returns it together with the
	// counter totals, or the first error the backend ran into.
	finish() (*Compiled, error)
}
