// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

// HTML draws a block of client-side HTML-subset markup in a bounding
// box, optionally with a background and a scrollbar. The markup lives
// in the dialog's string table; the layout carries only its index.
type HTML struct {
	entryBase
	x, y          int
	width, height int
	text          string
	background    bool
	scrollbar     bool
}

// NewHTML creates a detached HTML block.
func NewHTML(x, y, width, height int, text string, background, scrollbar bool) *HTML {
	return &HTML{
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		text:       text,
		background: background,
		scrollbar:  scrollbar,
	}
}

// X returns the horizontal position.
func (h *HTML) X() int { return h.x }

// SetX sets the horizontal position.
func (h *HTML) SetX(value int) { h.x = value }

// Y returns the vertical position.
func (h *HTML) Y() int { return h.y }

// SetY sets the vertical position.
func (h *HTML) SetY(value int) { h.y = value }

// Width returns the box width.
func (h *HTML) Width() int { return h.width }

// SetWidth sets the box width.
func (h *HTML) SetWidth(value int) { h.width = value }

// Height returns the box height.
func (h *HTML) Height() int { return h.height }

// SetHeight sets the box height.
func (h *HTML) SetHeight(value int) { h.height = value }

// Text returns the markup text.
func (h *HTML) Text() string { return h.text }

// SetText sets the markup text.
func (h *HTML) SetText(value string) {
	if h.text == value {
		return
	}
	h.text = value
	h.internInto(value)
}

// Background reports whether the block draws its own background.
func (h *HTML) Background() bool { return h.background }

// SetBackground sets the background flag.
func (h *HTML) SetBackground(value bool) { h.background = value }

// Scrollbar reports whether the block shows a scrollbar.
func (h *HTML) Scrollbar() bool { return h.scrollbar }

// SetScrollbar sets the scrollbar flag.
func (h *HTML) SetScrollbar(value bool) { h.scrollbar = value }

func (h *HTML) setParent(d *Dialog) {
	h.entryBase.setParent(d)
	if d != nil {
		d.Intern(h.text)
	}
}

func (h *HTML) appendTo(w layoutWriter) {
	w.op(opHTMLGump)
	w.num(h.x)
	w.num(h.y)
	w.num(h.width)
	w.num(h.height)
	w.num(h.intern(h.text))
	w.flag(h.background)
	w.flag(h.scrollbar)
}

// AddHTML appends an HTML markup block.
func (d *Dialog) AddHTML(x, y, width, height int, text string, background, scrollbar bool) *HTML {
	entry := NewHTML(x, y, width, height, text, background, scrollbar)
	d.Add(entry)
	return entry
}

// htmlLocalizedForm selects which of the three localized-HTML wire
// shapes an [HTMLLocalized] renders as. The form is fixed at
// construction: the three shapes order their fields differently, so
// flipping between them at runtime would silently reinterpret
// whatever color or args were set.
type htmlLocalizedForm uint8

const (
	htmlLocalizedPlain htmlLocalizedForm = iota
	htmlLocalizedColor
	htmlLocalizedArgs
)

// HTMLLocalized draws a client-side localized text block identified
// by a localization number, in one of three wire shapes: plain
// (number only), color (number plus a text color), or args (number
// plus a color plus an argument string spliced into the localized
// template by the client).
type HTMLLocalized struct {
	entryBase
	x, y          int
	width, height int
	number        int
	args          string
	color         int
	background    bool
	scrollbar     bool
	form          htmlLocalizedForm
}

// NewHTMLLocalized creates a detached localized block in the plain
// form.
func NewHTMLLocalized(x, y, width, height, number int, background, scrollbar bool) *HTMLLocalized {
	return &HTMLLocalized{
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		number:     number,
		background: background,
		scrollbar:  scrollbar,
		form:       htmlLocalizedPlain,
	}
}

// NewHTMLLocalizedColor creates a detached localized block in the
// color form.
func NewHTMLLocalizedColor(x, y, width, height, number, color int, background, scrollbar bool) *HTMLLocalized {
	return &HTMLLocalized{
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		number:     number,
		color:      color,
		background: background,
		scrollbar:  scrollbar,
		form:       htmlLocalizedColor,
	}
}

// NewHTMLLocalizedArgs creates a detached localized block in the args
// form. The client splices args into the localized template; the
// string passes through both encodings opaquely. Behavior with
// multi-argument or non-ASCII strings varies by client generation, so
// verify against the clients you target.
func NewHTMLLocalizedArgs(x, y, width, height, number int, args string, color int, background, scrollbar bool) *HTMLLocalized {
	return &HTMLLocalized{
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		number:     number,
		args:       args,
		color:      color,
		background: background,
		scrollbar:  scrollbar,
		form:       htmlLocalizedArgs,
	}
}

// X returns the horizontal position.
func (h *HTMLLocalized) X() int { return h.x }

// SetX sets the horizontal position.
func (h *HTMLLocalized) SetX(value int) { h.x = value }

// Y returns the vertical position.
func (h *HTMLLocalized) Y() int { return h.y }

// SetY sets the vertical position.
func (h *HTMLLocalized) SetY(value int) { h.y = value }

// Width returns the box width.
func (h *HTMLLocalized) Width() int { return h.width }

// SetWidth sets the box width.
func (h *HTMLLocalized) SetWidth(value int) { h.width = value }

// Height returns the box height.
func (h *HTMLLocalized) Height() int { return h.height }

// SetHeight sets the box height.
func (h *HTMLLocalized) SetHeight(value int) { h.height = value }

// Number returns the localization number.
func (h *HTMLLocalized) Number() int { return h.number }

// SetNumber sets the localization number.
func (h *HTMLLocalized) SetNumber(value int) { h.number = value }

// Args returns the argument string. Only the args form renders it.
func (h *HTMLLocalized) Args() string { return h.args }

// SetArgs sets the argument string.
func (h *HTMLLocalized) SetArgs(value string) { h.args = value }

// Color returns the text color. The plain form does not render it.
func (h *HTMLLocalized) Color() int { return h.color }

// SetColor sets the text color.
func (h *HTMLLocalized) SetColor(value int) { h.color = value }

// Background reports whether the block draws its own background.
func (h *HTMLLocalized) Background() bool { return h.background }

// SetBackground sets the background flag.
func (h *HTMLLocalized) SetBackground(value bool) { h.background = value }

// Scrollbar reports whether the block shows a scrollbar.
func (h *HTMLLocalized) Scrollbar() bool { return h.scrollbar }

// SetScrollbar sets the scrollbar flag.
func (h *HTMLLocalized) SetScrollbar(value bool) { h.scrollbar = value }

func (h *HTMLLocalized) appendTo(w layoutWriter) {
	switch h.form {
	case htmlLocalizedPlain:
		w.op(opXMFHTMLGump)
		w.num(h.x)
		w.num(h.y)
		w.num(h.width)
		w.num(h.height)
		w.num(h.number)
		w.flag(h.background)
		w.flag(h.scrollbar)
	case htmlLocalizedColor:
		w.op(opXMFHTMLGumpColor)
		w.num(h.x)
		w.num(h.y)
		w.num(h.width)
		w.num(h.height)
		w.num(h.number)
		w.flag(h.background)
		w.flag(h.scrollbar)
		w.num(h.color)
	case htmlLocalizedArgs:
		w.op(opXMFHTMLTok)
		w.num(h.x)
		w.num(h.y)
		w.num(h.width)
		w.num(h.height)
		w.flag(h.background)
		w.flag(h.scrollbar)
		w.num(h.color)
		w.num(h.number)
		w.text(h.args)
	}
}

// AddHTMLLocalized appends a localized text block (plain form).
func (d *Dialog) AddHTMLLocalized(x, y, width, height, number int, background, scrollbar bool) *HTMLLocalized {
	entry := NewHTMLLocalized(x, y, width, height, number, background, scrollbar)
	d.Add(entry)
	return entry
}

// AddHTMLLocalizedColor appends a localized text block with a text
// color (color form).
func (d *Dialog) AddHTMLLocalizedColor(x, y, width, height, number, color int, background, scrollbar bool) *HTMLLocalized {
	entry := NewHTMLLocalizedColor(x, y, width, height, number, color, background, scrollbar)
	d.Add(entry)
	return entry
}

// AddHTMLLocalizedArgs appends a localized text block with an
// argument string (args form).
func (d *Dialog) AddHTMLLocalizedArgs(x, y, width, height, number int, args string, color int, background, scrollbar bool) *HTMLLocalized {
	entry := NewHTMLLocalizedArgs(x, y, width, height, number, args, color, background, scrollbar)
	d.Add(entry)
	return entry
}
