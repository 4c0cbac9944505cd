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

package timer

import (
	"fmt"
	"time"
)

// Cadence is the period between decrements of a running timer.
const Cadence = time.Second / 60

// Countdown is a single 8-bit timer.
type Countdown struct {
	label string
	value uint8

	// the time of the most recent decrement. only changes when the timer is
	// decremented or reset
	lastTick time.Time
}

func (cd Countdown) String() string {
	return fmt.Sprintf("%s=%#02x", cd.label, cd.value)
}

// Label returns an identifying string for the timer.
func (cd Countdown) Label() string {
	return cd.label
}

// Value returns the current value of the timer.
func (cd Countdown) Value() uint8 {
	return cd.value
}

// Load a new value into the timer. The time of the most recent decrement is
// not changed.
func (cd *Countdown) Load(val uint8) {
	cd.value = val
}

// tick decrements the timer if it is non-zero and at least one Cadence has
// elapsed since the previous decrement. returns true if the timer was
// decremented
func (cd *Countdown) tick(now time.Time) bool {
	if cd.value == 0 || now.Sub(cd.lastTick) < Cadence {
		return false
	}
	cd.value--
	cd.lastTick = now
	return true
}

func (cd *Countdown) reset(now time.Time) {
	cd.value = 0
	cd.lastTick = now
}
