// Copyright 2026 The UOForge Authors
// SPDX-License-Identifier: Apache-2.0

package gump

// Check is a checkbox. Its switch id identifies it in replies: when
// the box is ticked at reply time, the id appears in the reply's
// switch list. Rendering a checkbox counts one switch toward the
// compiled totals.
type Check struct {
	entryBase
	x, y       int
	inactiveID int
	activeID   int
	state      bool
	switchID   int
}

// NewCheck creates a detached checkbox. inactiveID and activeID are
// the gump-art ids of the unticked and ticked states; state is the
// initial tick.
func NewCheck(x, y, inactiveID, activeID int, state bool, switchID int) *Check {
	return &Check{
		x:          x,
		y:          y,
		inactiveID: inactiveID,
		activeID:   activeID,
		state:      state,
		switchID:   switchID,
	}
}

// X returns the horizontal position.
func (c *Check) X() int { return c.x }

// SetX sets the horizontal position.
func (c *Check) SetX(value int) { c.x = value }

// Y returns the vertical position.
func (c *Check) Y() int { return c.y }

// SetY sets the vertical position.
func (c *Check) SetY(value int) { c.y = value }

// InactiveID returns the gump-art id of the unticked state.
func (c *Check) InactiveID() int { return c.inactiveID }

// SetInactiveID sets the gump-art id of the unticked state.
func (c *Check) SetInactiveID(value int) { c.inactiveID = value }

// ActiveID returns the gump-art id of the ticked state.
func (c *Check) ActiveID() int { return c.activeID }

// SetActiveID sets the gump-art id of the ticked state.
func (c *Check) SetActiveID(value int) { c.activeID = value }

// State returns the initial tick state.
func (c *Check) State() bool { return c.state }

// SetState sets the initial tick state.
func (c *Check) SetState(value bool) { c.state = value }

// SwitchID returns the id this checkbox reports in replies.
func (c *Check) SwitchID() int { return c.switchID }

// SetSwitchID sets the reply switch id.
func (c *Check) SetSwitchID(value int) { c.switchID = value }

func (c *Check) appendTo(w layoutWriter) {
	w.op(opCheckbox)
	w.num(c.x)
	w.num(c.y)
	w.num(c.inactiveID)
	w.num(c.activeID)
	w.flag(c.state)
	w.num(c.switchID)
	w.countSwitch()
}

// AddCheck appends a checkbox.
func (d *Dialog) AddCheck(x, y, inactiveID, activeID int, state bool, switchID int) *Check {
	entry := NewCheck(x, y, inactiveID, activeID, state, switchID)
	d.Add(entry)
	return entry
}

// Radio is a radio button. Radios between two [Group] markers form
// one mutually exclusive set; the selected radio's switch id appears
// in the reply's switch list. Rendering a radio counts one switch
// toward the compiled totals.
type Radio struct {
	entryBase
	x, y       int
	inactiveID int
	activeID   int
	state      bool
	switchID   int
}

// NewRadio creates a detached radio button. Field meanings match
// [NewCheck].
func NewRadio(x, y, inactiveID, activeID int, state bool, switchID int) *Radio {
	return &Radio{
		x:          x,
		y:          y,
		inactiveID: inactiveID,
		activeID:   activeID,
		state:      state,
		switchID:   switchID,
	}
}

// X returns the horizontal position.
func (r *Radio) X() int { return r.x }

// SetX sets the horizontal position.
func (r *Radio) SetX(value int) { r.x = value }

// Y returns the vertical position.
func (r *Radio) Y() int { return r.y }

// SetY sets the vertical position.
func (r *Radio) SetY(value int) { r.y = value }

// InactiveID returns the gump-art id of the unselected state.
func (r *Radio) InactiveID() int { return r.inactiveID }

// SetInactiveID sets the gump-art id of the unselected state.
func (r *Radio) SetInactiveID(value int) { r.inactiveID = value }

// ActiveID returns the gump-art id of the selected state.
func (r *Radio) ActiveID() int { return r.activeID }

// SetActiveID sets the gump-art id of the selected state.
func (r *Radio) SetActiveID(value int) { r.activeID = value }

// State returns the initial selection state.
func (r *Radio) State() bool { return r.state }

// SetState sets the initial selection state.
func (r *Radio) SetState(value bool) { r.state = value }

// SwitchID returns the id this radio reports in replies.
func (r *Radio) SwitchID() int { return r.switchID }

// SetSwitchID sets the reply switch id.
func (r *Radio) SetSwitchID(value int) { r.switchID = value }

func (r *Radio) appendTo(w layoutWriter) {
	w.op(opRadio)
	w.num(r.x)
	w.num(r.y)
	w.num(r.inactiveID)
	w.num(r.activeID)
	w.flag(r.state)
	w.num(r.switchID)
	w.countSwitch()
}

// AddRadio appends a radio button.
func (d *Dialog) AddRadio(x, y, inactiveID, activeID int, state bool, switchID int) *Radio {
	entry := NewRadio(x, y, inactiveID, activeID, state, switchID)
	d.Add(entry)
	return entry
}
