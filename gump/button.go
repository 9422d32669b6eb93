// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

import "fmt"

// ButtonType selects what happens client-side when a button is
// pressed.
type ButtonType uint8

const (
	// ButtonTypePage flips to the page named by the button's param
	// without contacting the server.
	ButtonTypePage ButtonType = 0

	// ButtonTypeReply closes the dialog and sends a reply carrying
	// the button's id.
	ButtonTypeReply ButtonType = 1
)

// String returns "page" or "reply".
func (t ButtonType) String() string {
	switch t {
	case ButtonTypePage:
		return "page"
	case ButtonTypeReply:
		return "reply"
	default:
		return fmt.Sprintf("buttontype(%d)", uint8(t))
	}
}

// Button is a pressable widget with normal and pressed art states.
type Button struct {
	entryBase
	x, y       int
	normalID   int
	pressedID  int
	buttonType ButtonType
	param      int
	buttonID   int
}

// NewButton creates a detached button. For a [ButtonTypePage] button,
// param is the destination page and buttonID is ignored by the
// client; for a [ButtonTypeReply] button, buttonID is the value the
// reply carries and param is free for application use.
func NewButton(x, y, normalID, pressedID, buttonID int, buttonType ButtonType, param int) *Button {
	return &Button{
		x:          x,
		y:          y,
		normalID:   normalID,
		pressedID:  pressedID,
		buttonType: buttonType,
		param:      param,
		buttonID:   buttonID,
	}
}

// X returns the horizontal position.
func (b *Button) X() int { return b.x }

// SetX sets the horizontal position.
func (b *Button) SetX(value int) { b.x = value }

// Y returns the vertical position.
func (b *Button) Y() int { return b.y }

// SetY sets the vertical position.
func (b *Button) SetY(value int) { b.y = value }

// NormalID returns the gump-art id of the unpressed state.
func (b *Button) NormalID() int { return b.normalID }

// SetNormalID sets the gump-art id of the unpressed state.
func (b *Button) SetNormalID(value int) { b.normalID = value }

// PressedID returns the gump-art id of the pressed state.
func (b *Button) PressedID() int { return b.pressedID }

// SetPressedID sets the gump-art id of the pressed state.
func (b *Button) SetPressedID(value int) { b.pressedID = value }

// Type returns the button behavior.
func (b *Button) Type() ButtonType { return b.buttonType }

// SetType sets the button behavior.
func (b *Button) SetType(value ButtonType) { b.buttonType = value }

// Param returns the page number (page buttons) or free application
// value (reply buttons).
func (b *Button) Param() int { return b.param }

// SetParam sets the param value.
func (b *Button) SetParam(value int) { b.param = value }

// ButtonID returns the id a reply carries when this button is
// pressed.
func (b *Button) ButtonID() int { return b.buttonID }

// SetButtonID sets the reply id.
func (b *Button) SetButtonID(value int) { b.buttonID = value }

func (b *Button) appendTo(w layoutWriter) {
	w.op(opButton)
	w.num(b.x)
	w.num(b.y)
	w.num(b.normalID)
	w.num(b.pressedID)
	w.num(int(b.buttonType))
	w.num(b.param)
	w.num(b.buttonID)
}

// AddButton appends a button. See [NewButton] for how param and
// buttonID interact with the button type.
func (d *Dialog) AddButton(x, y, normalID, pressedID, buttonID int, buttonType ButtonType, param int) *Button {
	entry := NewButton(x, y, normalID, pressedID, buttonID, buttonType, param)
	d.Add(entry)
	return entry
}

// ImageTiledButton is a button drawn with an item-art overlay on top
// of the button art, optionally carrying its own localized tooltip.
type ImageTiledButton struct {
	entryBase
	x, y             int
	normalID         int
	pressedID        int
	buttonType       ButtonType
	param            int
	buttonID         int
	itemID           int
	hue              int
	width, height    int
	localizedTooltip int
}

// NewImageTiledButton creates a detached item-overlay button. The
// item art is tiled into the width×height box and hued with hue (0
// keeps it unhued; unlike [Image] the hue field is always on the
// wire). A positive localizedTooltip attaches a tooltip with that
// localization number.
func NewImageTiledButton(x, y, normalID, pressedID, buttonID int, buttonType ButtonType, param, itemID, hue, width, height, localizedTooltip int) *ImageTiledButton {
	return &ImageTiledButton{
		x:                x,
		y:                y,
		normalID:         normalID,
		pressedID:        pressedID,
		buttonType:       buttonType,
		param:            param,
		buttonID:         buttonID,
		itemID:           itemID,
		hue:              hue,
		width:            width,
		height:           height,
		localizedTooltip: localizedTooltip,
	}
}

// X returns the horizontal position.
func (b *ImageTiledButton) X() int { return b.x }

// SetX sets the horizontal position.
func (b *ImageTiledButton) SetX(value int) { b.x = value }

// Y returns the vertical position.
func (b *ImageTiledButton) Y() int { return b.y }

// SetY sets the vertical position.
func (b *ImageTiledButton) SetY(value int) { b.y = value }

// NormalID returns the gump-art id of the unpressed state.
func (b *ImageTiledButton) NormalID() int { return b.normalID }

// SetNormalID sets the gump-art id of the unpressed state.
func (b *ImageTiledButton) SetNormalID(value int) { b.normalID = value }

// PressedID returns the gump-art id of the pressed state.
func (b *ImageTiledButton) PressedID() int { return b.pressedID }

// SetPressedID sets the gump-art id of the pressed state.
func (b *ImageTiledButton) SetPressedID(value int) { b.pressedID = value }

// Type returns the button behavior.
func (b *ImageTiledButton) Type() ButtonType { return b.buttonType }

// SetType sets the button behavior.
func (b *ImageTiledButton) SetType(value ButtonType) { b.buttonType = value }

// Param returns the page number (page buttons) or free application
// value (reply buttons).
func (b *ImageTiledButton) Param() int { return b.param }

// SetParam sets the param value.
func (b *ImageTiledButton) SetParam(value int) { b.param = value }

// ButtonID returns the id a reply carries when this button is
// pressed.
func (b *ImageTiledButton) ButtonID() int { return b.buttonID }

// SetButtonID sets the reply id.
func (b *ImageTiledButton) SetButtonID(value int) { b.buttonID = value }

// ItemID returns the overlaid item-art id.
func (b *ImageTiledButton) ItemID() int { return b.itemID }

// SetItemID sets the overlaid item-art id.
func (b *ImageTiledButton) SetItemID(value int) { b.itemID = value }

// Hue returns the item-art hue. Always rendered, even when zero.
func (b *ImageTiledButton) Hue() int { return b.hue }

// SetHue sets the item-art hue.
func (b *ImageTiledButton) SetHue(value int) { b.hue = value }

// Width returns the overlay box width.
func (b *ImageTiledButton) Width() int { return b.width }

// SetWidth sets the overlay box width.
func (b *ImageTiledButton) SetWidth(value int) { b.width = value }

// Height returns the overlay box height.
func (b *ImageTiledButton) Height() int { return b.height }

// SetHeight sets the overlay box height.
func (b *ImageTiledButton) SetHeight(value int) { b.height = value }

// LocalizedTooltip returns the tooltip localization number, 0 for
// none.
func (b *ImageTiledButton) LocalizedTooltip() int { return b.localizedTooltip }

// SetLocalizedTooltip sets the tooltip localization number.
func (b *ImageTiledButton) SetLocalizedTooltip(value int) { b.localizedTooltip = value }

func (b *ImageTiledButton) appendTo(w layoutWriter) {
	w.op(opButtonTileArt)
	w.num(b.x)
	w.num(b.y)
	w.num(b.normalID)
	w.num(b.pressedID)
	w.num(int(b.buttonType))
	w.num(b.param)
	w.num(b.buttonID)
	w.num(b.itemID)
	w.num(b.hue)
	w.num(b.width)
	w.num(b.height)
	if b.localizedTooltip > 0 {
		// The tooltip is a sibling group spliced in by the entry
		// itself: close the buttontileart group and open a tooltip
		// group, which the compiler's trailing delimiter closes.
		w.end()
		w.begin()
		w.op(opTooltip)
		w.num(b.localizedTooltip)
	}
}

// AddImageTiledButton appends an item-overlay button. See
// [NewImageTiledButton].
func (d *Dialog) AddImageTiledButton(x, y, normalID, pressedID, buttonID int, buttonType ButtonType, param, itemID, hue, width, height, localizedTooltip int) *ImageTiledButton {
	entry := NewImageTiledButton(x, y, normalID, pressedID, buttonID, buttonType, param, itemID, hue, width, height, localizedTooltip)
	d.Add(entry)
	return entry
}
