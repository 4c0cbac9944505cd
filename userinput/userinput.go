// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "github.com/gopher8/gopher8/hardware/input"

// Event describes any user input event that can be handled by Controllers.
type Event interface{}

// KeyMod identifies the modifier keys held down during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModAlt
	KeyModCtrl
)

// EventKeyboard is a key press or key release. Key is the name of the key in
// upper case, for example "Q" or "ESCAPE".
type EventKeyboard struct {
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}

// EventQuit is sent when the user has requested that the emulation end, for
// example by closing the window.
type EventQuit struct{}

// HandleInput conceptualises the destination of keypad events.
type HandleInput interface {
	PushEvent(ev input.Event) error
}
