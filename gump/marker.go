// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

// Page is a page marker. Entries after a page marker belong to that
// page; the client shows one page at a time and [ButtonTypePage]
// buttons flip between them. Page 0 is the background page, always
// visible underneath the active page.
type Page struct {
	entryBase
	page int
}

// NewPage creates a detached page marker.
func NewPage(page int) *Page {
	return &Page{page: page}
}

// Page returns the page number.
func (p *Page) Page() int { return p.page }

// SetPage sets the page number.
func (p *Page) SetPage(value int) { p.page = value }

func (p *Page) appendTo(w layoutWriter) {
	w.op(opPage)
	w.num(p.page)
}

// AddPage appends a page marker: entries added after it render on the
// given page.
func (d *Dialog) AddPage(page int) *Page {
	entry := NewPage(page)
	d.Add(entry)
	return entry
}

// Group is a group marker. Radio buttons after a group marker form one
// mutually exclusive set; a new marker starts the next set.
type Group struct {
	entryBase
	group int
}

// NewGroup creates a detached group marker.
func NewGroup(group int) *Group {
	return &Group{group: group}
}

// Group returns the group number.
func (g *Group) Group() int { return g.group }

// SetGroup sets the group number.
func (g *Group) SetGroup(value int) { g.group = value }

func (g *Group) appendTo(w layoutWriter) {
	w.op(opGroup)
	w.num(g.group)
}

// AddGroup appends a group marker: radio buttons added after it form
// one mutually exclusive set.
func (d *Dialog) AddGroup(group int) *Group {
	entry := NewGroup(group)
	d.Add(entry)
	return entry
}

// Tooltip attaches a localized tooltip to the preceding entry. The
// number is a client-side localization id.
type Tooltip struct {
	entryBase
	number int
}

// NewTooltip creates a detached tooltip.
func NewTooltip(number int) *Tooltip {
	return &Tooltip{number: number}
}

// Number returns the localization number.
func (t *Tooltip) Number() int { return t.number }

// SetNumber sets the localization number.
func (t *Tooltip) SetNumber(value int) { t.number = value }

func (t *Tooltip) appendTo(w layoutWriter) {
	w.op(opTooltip)
	w.num(t.number)
}

// AddTooltip appends a localized tooltip for the preceding entry.
func (d *Dialog) AddTooltip(number int) *Tooltip {
	entry := NewTooltip(number)
	d.Add(entry)
	return entry
}

// ItemProperty makes the preceding entry show the property list of a
// world object, referenced by its serial.
type ItemProperty struct {
	entryBase
	serial uint32
}

// NewItemProperty creates a detached item-property reference.
func NewItemProperty(serial uint32) *ItemProperty {
	return &ItemProperty{serial: serial}
}

// Serial returns the referenced object serial.
func (p *ItemProperty) Serial() uint32 { return p.serial }

// SetSerial sets the referenced object serial.
func (p *ItemProperty) SetSerial(value uint32) { p.serial = value }

func (p *ItemProperty) appendTo(w layoutWriter) {
	w.op(opItemProperty)
	// The wire field is a signed 32-bit slot; high serials render as
	// their two's-complement value in both encodings.
	w.num(int(int32(p.serial)))
}

// AddItemProperty appends an item-property reference for the
// preceding entry.
func (d *Dialog) AddItemProperty(serial uint32) *ItemProperty {
	entry := NewItemProperty(serial)
	d.Add(entry)
	return entry
}
