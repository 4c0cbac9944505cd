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

import (
	"strings"

	"github.com/gopher8/gopher8/hardware/input"
)

// mapping of host keyboard keys to keypad keys.
var keyMap = map[string]input.Key{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// KeyCode returns the keypad key for the named host key. Key names are case
// insensitive.
func KeyCode(key string) (input.Key, bool) {
	k, ok := keyMap[strings.ToUpper(key)]
	return k, ok
}

// Controllers keeps track of user input state that is not part of the
// emulated machine.
type Controllers struct {
	// whether or not the last event was consumed by the emulated keypad
	LastKeyHandled bool

	// the user has requested the emulation to end
	Quit bool

	// the user has requested the emulation to pause
	Paused bool
}

// HandleUserInput translates the Event and forwards it to the HandleInput
// implementation if it is a keypad event.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		return c.keyboard(ev, handle)
	}

	return nil
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	// key repeats are not transitions
	if ev.Repeat {
		return nil
	}

	if ev.Down && ev.Mod == KeyModNone {
		switch strings.ToUpper(ev.Key) {
		case "ESCAPE":
			c.Quit = true
			return nil
		case "P":
			c.Paused = !c.Paused
			return nil
		}
	}

	k, ok := KeyCode(ev.Key)
	if !ok {
		return nil
	}

	// modifiers are ignored for key releases so that a key cannot become
	// stuck in the pressed state
	if ev.Down && ev.Mod != KeyModNone {
		return nil
	}

	c.LastKeyHandled = true

	return handle.PushEvent(input.Event{Key: k, Pressed: ev.Down})
}
