// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

// Label draws one line of text in a fixed hue. The text lives in the
// dialog's string table; the layout carries only its index.
type Label struct {
	entryBase
	x, y int
	hue  int
	text string
}

// NewLabel creates a detached label.
func NewLabel(x, y, hue int, text string) *Label {
	return &Label{x: x, y: y, hue: hue, text: text}
}

// X returns the horizontal position.
func (l *Label) X() int { return l.x }

// SetX sets the horizontal position.
func (l *Label) SetX(value int) { l.x = value }

// Y returns the vertical position.
func (l *Label) Y() int { return l.y }

// SetY sets the vertical position.
func (l *Label) SetY(value int) { l.y = value }

// Hue returns the text hue.
func (l *Label) Hue() int { return l.hue }

// SetHue sets the text hue.
func (l *Label) SetHue(value int) { l.hue = value }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText sets the label text.
func (l *Label) SetText(value string) {
	if l.text == value {
		return
	}
	l.text = value
	l.internInto(value)
}

func (l *Label) setParent(d *Dialog) {
	l.entryBase.setParent(d)
	if d != nil {
		d.Intern(l.text)
	}
}

func (l *Label) appendTo(w layoutWriter) {
	w.op(opText)
	w.num(l.x)
	w.num(l.y)
	w.num(l.hue)
	w.num(l.intern(l.text))
}

// AddLabel appends a one-line text label.
func (d *Dialog) AddLabel(x, y, hue int, text string) *Label {
	entry := NewLabel(x, y, hue, text)
	d.Add(entry)
	return entry
}

// LabelCropped draws one line of text clipped to a bounding box.
type LabelCropped struct {
	entryBase
	x, y          int
	width, height int
	hue           int
	text          string
}

// NewLabelCropped creates a detached cropped label.
func NewLabelCropped(x, y, width, height, hue int, text string) *LabelCropped {
	return &LabelCropped{x: x, y: y, width: width, height: height, hue: hue, text: text}
}

// X returns the horizontal position.
func (l *LabelCropped) X() int { return l.x }

// SetX sets the horizontal position.
func (l *LabelCropped) SetX(value int) { l.x = value }

// Y returns the vertical position.
func (l *LabelCropped) Y() int { return l.y }

// SetY sets the vertical position.
func (l *LabelCropped) SetY(value int) { l.y = value }

// Width returns the clipping width.
func (l *LabelCropped) Width() int { return l.width }

// SetWidth sets the clipping width.
func (l *LabelCropped) SetWidth(value int) { l.width = value }

// Height returns the clipping height.
func (l *LabelCropped) Height() int { return l.height }

// SetHeight sets the clipping height.
func (l *LabelCropped) SetHeight(value int) { l.height = value }

// Hue returns the text hue.
func (l *LabelCropped) Hue() int { return l.hue }

// SetHue sets the text hue.
func (l *LabelCropped) SetHue(value int) { l.hue = value }

// Text returns the label text.
func (l *LabelCropped) Text() string { return l.text }

// SetText sets the label text.
func (l *LabelCropped) SetText(value string) {
	if l.text == value {
		return
	}
	l.text = value
	l.internInto(value)
}

func (l *LabelCropped) setParent(d *Dialog) {
	l.entryBase.setParent(d)
	if d != nil {
		d.Intern(l.text)
	}
}

func (l *LabelCropped) appendTo(w layoutWriter) {
	w.op(opCroppedText)
	w.num(l.x)
	w.num(l.y)
	w.num(l.width)
	w.num(l.height)
	w.num(l.hue)
	w.num(l.intern(l.text))
}

// AddLabelCropped appends a text label clipped to a bounding box.
func (d *Dialog) AddLabelCropped(x, y, width, height, hue int, text string) *LabelCropped {
	entry := NewLabelCropped(x, y, width, height, hue, text)
	d.Add(entry)
	return entry
}

// TextEntry is an editable text field. The entry id identifies the
// field in replies, paired with whatever the user typed. Rendering a
// text entry counts one text entry toward the compiled totals.
type TextEntry struct {
	entryBase
	x, y          int
	width, height int
	hue           int
	entryID       int
	initial       string
}

// NewTextEntry creates a detached text field prefilled with initial.
func NewTextEntry(x, y, width, height, hue, entryID int, initial string) *TextEntry {
	return &TextEntry{
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		hue:     hue,
		entryID: entryID,
		initial: initial,
	}
}

// X returns the horizontal position.
func (t *TextEntry) X() int { return t.x }

// SetX sets the horizontal position.
func (t *TextEntry) SetX(value int) { t.x = value }

// Y returns the vertical position.
func (t *TextEntry) Y() int { return t.y }

// SetY sets the vertical position.
func (t *TextEntry) SetY(value int) { t.y = value }

// Width returns the field width.
func (t *TextEntry) Width() int { return t.width }

// SetWidth sets the field width.
func (t *TextEntry) SetWidth(value int) { t.width = value }

// Height returns the field height.
func (t *TextEntry) Height() int { return t.height }

// SetHeight sets the field height.
func (t *TextEntry) SetHeight(value int) { t.height = value }

// Hue returns the text hue.
func (t *TextEntry) Hue() int { return t.hue }

// SetHue sets the text hue.
func (t *TextEntry) SetHue(value int) { t.hue = value }

// EntryID returns the id this field reports in replies.
func (t *TextEntry) EntryID() int { return t.entryID }

// SetEntryID sets the reply entry id.
func (t *TextEntry) SetEntryID(value int) { t.entryID = value }

// InitialText returns the prefill text.
func (t *TextEntry) InitialText() string { return t.initial }

// SetInitialText sets the prefill text.
func (t *TextEntry) SetInitialText(value string) {
	if t.initial == value {
		return
	}
	t.initial = value
	t.internInto(value)
}

func (t *TextEntry) setParent(d *Dialog) {
	t.entryBase.setParent(d)
	if d != nil {
		d.Intern(t.initial)
	}
}

func (t *TextEntry) appendTo(w layoutWriter) {
	w.op(opTextEntry)
	w.num(t.x)
	w.num(t.y)
	w.num(t.width)
	w.num(t.height)
	w.num(t.hue)
	w.num(t.entryID)
	w.num(t.intern(t.initial))
	w.countTextEntry()
}

// AddTextEntry appends an editable text field.
func (d *Dialog) AddTextEntry(x, y, width, height, hue, entryID int, initial string) *TextEntry {
	entry := NewTextEntry(x, y, width, height, hue, entryID, initial)
	d.Add(entry)
	return entry
}

// TextEntryLimited is an editable text field that caps input at a
// maximum number of characters, enforced client-side.
type TextEntryLimited struct {
	entryBase
	x, y          int
	width, height int
	hue           int
	entryID       int
	initial       string
	size          int
}

// NewTextEntryLimited creates a detached bounded text field. size is
// the maximum input length in characters.
func NewTextEntryLimited(x, y, width, height, hue, entryID int, initial string, size int) *TextEntryLimited {
	return &TextEntryLimited{
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		hue:     hue,
		entryID: entryID,
		initial: initial,
		size:    size,
	}
}

// X returns the horizontal position.
func (t *TextEntryLimited) X() int { return t.x }

// SetX sets the horizontal position.
func (t *TextEntryLimited) SetX(value int) { t.x = value }

// Y returns the vertical position.
func (t *TextEntryLimited) Y() int { return t.y }

// SetY sets the vertical position.
func (t *TextEntryLimited) SetY(value int) { t.y = value }

// Width returns the field width.
func (t *TextEntryLimited) Width() int { return t.width }

// SetWidth sets the field width.
func (t *TextEntryLimited) SetWidth(value int) { t.width = value }

// Height returns the field height.
func (t *TextEntryLimited) Height() int { return t.height }

// SetHeight sets the field height.
func (t *TextEntryLimited) SetHeight(value int) { t.height = value }

// Hue returns the text hue.
func (t *TextEntryLimited) Hue() int { return t.hue }

// SetHue sets the text hue.
func (t *TextEntryLimited) SetHue(value int) { t.hue = value }

// EntryID returns the id this field reports in replies.
func (t *TextEntryLimited) EntryID() int { return t.entryID }

// SetEntryID sets the reply entry id.
func (t *TextEntryLimited) SetEntryID(value int) { t.entryID = value }

// InitialText returns the prefill text.
func (t *TextEntryLimited) InitialText() string { return t.initial }

// SetInitialText sets the prefill text.
func (t *TextEntryLimited) SetInitialText(value string) {
	if t.initial == value {
		return
	}
	t.initial = value
	t.internInto(value)
}

// Size returns the maximum input length in characters.
func (t *TextEntryLimited) Size() int { return t.size }

// SetSize sets the maximum input length.
func (t *TextEntryLimited) SetSize(value int) { t.size = value }

func (t *TextEntryLimited) setParent(d *Dialog) {
	t.entryBase.setParent(d)
	if d != nil {
		d.Intern(t.initial)
	}
}

func (t *TextEntryLimited) appendTo(w layoutWriter) {
	w.op(opTextEntryLimited)
	w.num(t.x)
	w.num(t.y)
	w.num(t.width)
	w.num(t.height)
	w.num(t.hue)
	w.num(t.entryID)
	w.num(t.intern(t.initial))
	w.num(t.size)
	w.countTextEntry()
}

// AddTextEntryLimited appends an editable text field with a maximum
// input length.
func (d *Dialog) AddTextEntryLimited(x, y, width, height, hue, entryID int, initial string, size int) *TextEntryLimited {
	entry := NewTextEntryLimited(x, y, width, height, hue, entryID, initial, size)
	d.Add(entry)
	return entry
}
