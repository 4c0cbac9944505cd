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

// Clock returns the current time. The time.Now() function is a Clock.
type Clock func() time.Time

// Timers contains the delay timer and the sound timer.
type Timers struct {
	Delay Countdown
	Sound Countdown

	clock Clock
}

// NewTimers is the preferred method of initialisation for the Timers type.
// If clock is nil then time.Now() is used.
func NewTimers(clock Clock) *Timers {
	if clock == nil {
		clock = time.Now
	}
	tmr := &Timers{
		Delay: Countdown{label: "DT"},
		Sound: Countdown{label: "ST"},
		clock: clock,
	}
	tmr.Reset()
	return tmr
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("%s %s", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	now := tmr.clock()
	tmr.Delay.reset(now)
	tmr.Sound.reset(now)
}

// Tick decrements each timer if it is due to be decremented.
func (tmr *Timers) Tick() {
	now := tmr.clock()
	tmr.Delay.tick(now)
	tmr.Sound.tick(now)
}

// DelayTimer returns the value of the delay timer.
func (tmr *Timers) DelayTimer() uint8 {
	return tmr.Delay.Value()
}

// SetDelayTimer loads a new value into the delay timer.
func (tmr *Timers) SetDelayTimer(val uint8) {
	tmr.Delay.Load(val)
}

// SetSoundTimer loads a new value into the sound timer.
func (tmr *Timers) SetSoundTimer(val uint8) {
	tmr.Sound.Load(val)
}

// IsSounding returns true while the sound timer is non-zero.
func (tmr *Timers) IsSounding() bool {
	return tmr.Sound.Value() > 0
}
