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

package memory

import (
	"fmt"

	"github.com/gopher8/gopher8/curated"
)

// TooLarge is returned by Load() when the program image will not fit in the
// memory above ProgramOrigin.
const TooLarge = "memory: program too large (%d bytes, maximum %d)"

// Memory is the RAM of the CHIP-8.
type Memory struct {
	ram [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The memory will be in its reset state.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("RAM (%d bytes)", MemorySize)
}

// Reset zeroes memory and installs the font.
func (mem *Memory) Reset() {
	clear(mem.ram[:])
	copy(mem.ram[FontOrigin:], font[:])
}

// Load copies the program image into memory, starting at ProgramOrigin.
// Memory is not changed if the image is too large. Load() does not reset
// memory; if that is required then Reset() should be called first.
func (mem *Memory) Load(data []uint8) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf(TooLarge, len(data), MaxProgramSize)
	}
	copy(mem.ram[ProgramOrigin:], data)
	return nil
}

// Read the byte at address. The address wraps at MemorySize.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.ram[address&AddressMask]
}

// Write the byte to address. The address wraps at MemorySize.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.ram[address&AddressMask] = data
}

// ReadWord returns the big-endian 16-bit value formed from the byte at
// address and the byte at the following address. Both addresses wrap.
func (mem *Memory) ReadWord(address uint16) uint16 {
	return uint16(mem.Read(address))<<8 | uint16(mem.Read(address+1))
}
