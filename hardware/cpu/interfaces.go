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

package cpu

// Memory defines the memory operations required by the CPU. Addresses wrap
// at the top of memory.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Display defines the framebuffer operations required by the CPU.
type Display interface {
	Clear()

	// DrawSprite returns true if any set pixel was unset by the draw
	DrawSprite(x, y uint8, rows []uint8) bool
}

// Keypad defines the keypad operations required by the CPU.
type Keypad interface {
	// IsPressed consults the snapshot of the keypad taken at the start of
	// the current step
	IsPressed(key uint8) bool

	// NextKeyDown returns the oldest key-down transition not yet consumed
	NextKeyDown() (uint8, bool)

	// FlushKeyDowns forgets all key-down transitions
	FlushKeyDowns()
}

// Timers defines the timer operations required by the CPU.
type Timers interface {
	DelayTimer() uint8
	SetDelayTimer(val uint8)
	SetSoundTimer(val uint8)
}

// Random is the source of numbers for the RND instruction.
type Random interface {
	Byte() uint8
}
