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

// Package timer implements the delay and sound timers of the CHIP-8.
//
// Both timers are 8-bit countdown registers. While a timer is non-zero it is
// decremented once every Cadence of real time. The timers are independent of
// each other and each remembers when it was last decremented, so that one
// timer being written to does not affect the cadence of the other.
//
// The timers are not decremented by instruction execution. The Tick()
// function should be called once per machine step and decrements each timer
// if enough time has elapsed since its previous decrement.
package timer
