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

package input

import "fmt"

// Key is a CHIP-8 key code in the range 0x0 to 0xf.
type Key uint8

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

func (k Key) String() string {
	return fmt.Sprintf("%X", uint8(k))
}

// Valid returns true if the key code is in range.
func (k Key) Valid() bool {
	return k < NumKeys
}

// Event is a change in the state of a key.
type Event struct {
	Key     Key
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("key %s down", ev.Key)
	}
	return fmt.Sprintf("key %s up", ev.Key)
}

// State is the pressed state of every key.
type State [NumKeys]bool

func (s State) String() string {
	b := make([]byte, NumKeys)
	for k := range s {
		if s[k] {
			b[k] = Key(k).String()[0]
		} else {
			b[k] = '-'
		}
	}
	return string(b)
}
