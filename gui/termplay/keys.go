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

package termplay

import (
	"sort"
	"strings"
	"time"
)

// list of ASCII codes with special meaning.
const (
	keyCtrlC = 3
	keyEsc   = 27
)

// the terminal only reports key presses. a key is considered released if it
// has not been reported for this long. keyboard auto-repeat keeps a held key
// pressed once repeating has started.
const releaseDelay = 250 * time.Millisecond

// KeyNames returns the names of the keys in a chunk of terminal input. The
// names are in the form used by the userinput package. Escape sequences (for
// example, cursor keys) are ignored. A lone escape character is reported as
// "ESCAPE".
//
// The quit return value is true if the chunk contains a Ctrl-C.
func KeyNames(chunk []byte) (names []string, quit bool) {
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		switch {
		case b == keyCtrlC:
			quit = true

		case b == keyEsc:
			if i+1 < len(chunk) && (chunk[i+1] == '[' || chunk[i+1] == 'O') {
				// skip to the final byte of the sequence
				i += 2
				for i < len(chunk) && (chunk[i] < 0x40 || chunk[i] > 0x7e) {
					i++
				}
			} else {
				names = append(names, "ESCAPE")
			}

		case b > ' ' && b < 0x7f:
			names = append(names, strings.ToUpper(string(rune(b))))
		}
	}
	return names, quit
}

// keyTracker simulates key releases for a terminal that only reports key
// presses.
type keyTracker struct {
	held map[string]time.Time
}

func newKeyTracker() *keyTracker {
	return &keyTracker{held: make(map[string]time.Time)}
}

// press records that the key has been reported. returns true if the key was
// not already held.
func (kt *keyTracker) press(name string, now time.Time) bool {
	_, ok := kt.held[name]
	kt.held[name] = now
	return !ok
}

// expire returns the keys that have not been reported for longer than the
// release delay. those keys are no longer held.
func (kt *keyTracker) expire(now time.Time) []string {
	var released []string
	for k, t := range kt.held {
		if now.Sub(t) > releaseDelay {
			released = append(released, k)
			delete(kt.held, k)
		}
	}
	sort.Strings(released)
	return released
}
