// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

// Image draws a gump-art image at a fixed position, optionally
// recolored with a hue.
type Image struct {
	entryBase
	x, y    int
	imageID int
	hue     int
}

// NewImage creates a detached image. Hue 0 means "no recoloring" and
// suppresses the hue attribute on the wire.
func NewImage(x, y, imageID, hue int) *Image {
	return &Image{x: x, y: y, imageID: imageID, hue: hue}
}

// X returns the horizontal position.
func (i *Image) X() int { return i.x }

// SetX sets the horizontal position.
func (i *Image) SetX(value int) { i.x = value }

// Y returns the vertical position.
func (i *Image) Y() int { return i.y }

// SetY sets the vertical position.
func (i *Image) SetY(value int) { i.y = value }

// ImageID returns the gump-art id.
func (i *Image) ImageID() int { return i.imageID }

// SetImageID sets the gump-art id.
func (i *Image) SetImageID(value int) { i.imageID = value }

// Hue returns the recoloring hue, 0 for none.
func (i *Image) Hue() int { return i.hue }

// SetHue sets the recoloring hue.
func (i *Image) SetHue(value int) { i.hue = value }

func (i *Image) appendTo(w layoutWriter) {
	w.op(opGumpPic)
	w.num(i.x)
	w.num(i.y)
	w.num(i.imageID)
	if i.hue != 0 {
		w.attr(attrHue, i.hue)
	}
}

// AddImage appends a gump-art image. Hue 0 means no recoloring.
func (d *Dialog) AddImage(x, y, imageID, hue int) *Image {
	entry := NewImage(x, y, imageID, hue)
	d.Add(entry)
	return entry
}

// ImageTiled fills a rectangle by tiling a gump-art image.
type ImageTiled struct {
	entryBase
	x, y          int
	width, height int
	imageID       int
}

// NewImageTiled creates a detached tiled image.
func NewImageTiled(x, y, width, height, imageID int) *ImageTiled {
	return &ImageTiled{x: x, y: y, width: width, height: height, imageID: imageID}
}

// X returns the horizontal position.
func (i *ImageTiled) X() int { return i.x }

// SetX sets the horizontal position.
func (i *ImageTiled) SetX(value int) { i.x = value }

// Y returns the vertical position.
func (i *ImageTiled) Y() int { return i.y }

// SetY sets the vertical position.
func (i *ImageTiled) SetY(value int) { i.y = value }

// Width returns the filled width.
func (i *ImageTiled) Width() int { return i.width }

// SetWidth sets the filled width.
func (i *ImageTiled) SetWidth(value int) { i.width = value }

// Height returns the filled height.
func (i *ImageTiled) Height() int { return i.height }

// SetHeight sets the filled height.
func (i *ImageTiled) SetHeight(value int) { i.height = value }

// ImageID returns the gump-art id.
func (i *ImageTiled) ImageID() int { return i.imageID }

// SetImageID sets the gump-art id.
func (i *ImageTiled) SetImageID(value int) { i.imageID = value }

func (i *ImageTiled) appendTo(w layoutWriter) {
	w.op(opGumpPicTiled)
	w.num(i.x)
	w.num(i.y)
	w.num(i.width)
	w.num(i.height)
	w.num(i.imageID)
}

// AddImageTiled appends a rectangle filled by tiling a gump-art
// image.
func (d *Dialog) AddImageTiled(x, y, width, height, imageID int) *ImageTiled {
	entry := NewImageTiled(x, y, width, height, imageID)
	d.Add(entry)
	return entry
}

// Item draws a world item's art at a fixed position, optionally
// recolored. Unlike [Image], the hue changes the keyword: a hued item
// renders as "tilepichue" with a trailing hue field, an unhued one as
// "tilepic" with no hue field at all.
type Item struct {
	entryBase
	x, y   int
	itemID int
	hue    int
}

// NewItem creates a detached item render. Hue 0 means unhued.
func NewItem(x, y, itemID, hue int) *Item {
	return &Item{x: x, y: y, itemID: itemID, hue: hue}
}

// X returns the horizontal position.
func (i *Item) X() int { return i.x }

// SetX sets the horizontal position.
func (i *Item) SetX(value int) { i.x = value }

// Y returns the vertical position.
func (i *Item) Y() int { return i.y }

// SetY sets the vertical position.
func (i *Item) SetY(value int) { i.y = value }

// ItemID returns the item-art id.
func (i *Item) ItemID() int { return i.itemID }

// SetItemID sets the item-art id.
func (i *Item) SetItemID(value int) { i.itemID = value }

// Hue returns the recoloring hue, 0 for none.
func (i *Item) Hue() int { return i.hue }

// SetHue sets the recoloring hue.
func (i *Item) SetHue(value int) { i.hue = value }

func (i *Item) appendTo(w layoutWriter) {
	if i.hue == 0 {
		w.op(opTilePic)
	} else {
		w.op(opTilePicHue)
	}
	w.num(i.x)
	w.num(i.y)
	w.num(i.itemID)
	if i.hue != 0 {
		w.num(i.hue)
	}
}

// AddItem appends a world item render. Hue 0 means unhued.
func (d *Dialog) AddItem(x, y, itemID, hue int) *Item {
	entry := NewItem(x, y, itemID, hue)
	d.Add(entry)
	return entry
}

// Background draws a stretchable dialog background: a nine-patch
// gump-art set identified by its base image id.
type Background struct {
	entryBase
	x, y          int
	imageID       int
	width, height int
}

// NewBackground creates a detached background.
func NewBackground(x, y, imageID, width, height int) *Background {
	return &Background{x: x, y: y, imageID: imageID, width: width, height: height}
}

// X returns the horizontal position.
func (b *Background) X() int { return b.x }

// SetX sets the horizontal position.
func (b *Background) SetX(value int) { b.x = value }

// Y returns the vertical position.
func (b *Background) Y() int { return b.y }

// SetY sets the vertical position.
func (b *Background) SetY(value int) { b.y = value }

// ImageID returns the base gump-art id of the nine-patch set.
func (b *Background) ImageID() int { return b.imageID }

// SetImageID sets the base gump-art id.
func (b *Background) SetImageID(value int) { b.imageID = value }

// Width returns the stretched width.
func (b *Background) Width() int { return b.width }

// SetWidth sets the stretched width.
func (b *Background) SetWidth(value int) { b.width = value }

// Height returns the stretched height.
func (b *Background) Height() int { return b.height }

// SetHeight sets the stretched height.
func (b *Background) SetHeight(value int) { b.height = value }

func (b *Background) appendTo(w layoutWriter) {
	w.op(opResizePic)
	w.num(b.x)
	w.num(b.y)
	w.num(b.imageID)
	w.num(b.width)
	w.num(b.height)
}

// AddBackground appends a stretchable nine-patch background.
func (d *Dialog) AddBackground(x, y, imageID, width, height int) *Background {
	entry := NewBackground(x, y, imageID, width, height)
	d.Add(entry)
	return entry
}

// AlphaRegion makes a rectangle of the dialog translucent: everything
// rendered underneath it shows through checkered.
type AlphaRegion struct {
	entryBase
	x, y          int
	width, height int
}

// NewAlphaRegion creates a detached alpha region.
func NewAlphaRegion(x, y, width, height int) *AlphaRegion {
	return &AlphaRegion{x: x, y: y, width: width, height: height}
}

// X returns the horizontal position.
func (a *AlphaRegion) X() int { return a.x }

// SetX sets the horizontal position.
func (a *AlphaRegion) SetX(value int) { a.x = value }

// Y returns the vertical position.
func (a *AlphaRegion) Y() int { return a.y }

// SetY sets the vertical position.
func (a *AlphaRegion) SetY(value int) { a.y = value }

// Width returns the region width.
func (a *AlphaRegion) Width() int { return a.width }

// SetWidth sets the region width.
func (a *AlphaRegion) SetWidth(value int) { a.width = value }

// Height returns the region height.
func (a *AlphaRegion) Height() int { return a.height }

// SetHeight sets the region height.
func (a *AlphaRegion) SetHeight(value int) { a.height = value }

func (a *AlphaRegion) appendTo(w layoutWriter) {
	w.op(opCheckerTrans)
	w.num(a.x)
	w.num(a.y)
	w.num(a.width)
	w.num(a.height)
}

// AddAlphaRegion appends a translucent rectangle.
func (d *Dialog) AddAlphaRegion(x, y, width, height int) *AlphaRegion {
	entry := NewAlphaRegion(x, y, width, height)
	d.Add(entry)
	return entry
}
