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

package memory_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/test"
)

func TestReset(t *testing.T) {
	mem := memory.NewMemory()

	// glyph for zero begins at address zero
	test.ExpectEquality(t, mem.Read(0x000), 0xf0)
	test.ExpectEquality(t, mem.Read(0x004), 0xf0)

	// last row of the glyph for F
	test.ExpectEquality(t, mem.Read(0x04f), 0x80)

	// nothing between the font and the end of memory
	for a := uint16(0x050); a < memory.MemorySize; a++ {
		if !test.ExpectEquality(t, mem.Read(a), 0x00, a) {
			break
		}
	}

	// reset removes anything written
	mem.Write(0x300, 0xaa)
	mem.Write(0x000, 0x00)
	mem.Reset()
	test.ExpectEquality(t, mem.Read(0x300), 0x00)
	test.ExpectEquality(t, mem.Read(0x000), 0xf0)
}

func TestFontAddress(t *testing.T) {
	test.ExpectEquality(t, memory.FontAddress(0x0), 0x000)
	test.ExpectEquality(t, memory.FontAddress(0x1), 0x005)
	test.ExpectEquality(t, memory.FontAddress(0xf), 0x04b)

	// values beyond 0xf are not masked
	test.ExpectEquality(t, memory.FontAddress(0x1a), 0x082)
	test.ExpectEquality(t, memory.FontAddress(0xff), 0x4fb)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	// zero length program
	test.ExpectSuccess(t, mem.Load([]uint8{}))
	test.ExpectEquality(t, mem.Read(memory.ProgramOrigin), 0x00)

	test.ExpectSuccess(t, mem.Load([]uint8{0x00, 0xe0, 0x12, 0x00}))
	test.ExpectEquality(t, mem.ReadWord(memory.ProgramOrigin), 0x00e0)
	test.ExpectEquality(t, mem.ReadWord(memory.ProgramOrigin+2), 0x1200)

	// largest possible program
	data := make([]uint8, memory.MaxProgramSize)
	for i := range data {
		data[i] = uint8(i)
	}
	test.ExpectSuccess(t, mem.Load(data))
	test.ExpectEquality(t, mem.Read(memory.MemorySize-1), 0xff)

	// one byte too large. memory is left unchanged
	mem.Reset()
	err := mem.Load(make([]uint8, memory.MaxProgramSize+1))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.TooLarge))
	test.ExpectEquality(t, err.Error(), "memory: program too large (3585 bytes, maximum 3584)")
	test.ExpectEquality(t, mem.Read(memory.ProgramOrigin), 0x00)
}

func TestWraparound(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x1000, 0x12)
	test.ExpectEquality(t, mem.Read(0x000), 0x12)
	test.ExpectEquality(t, mem.Read(0xf000), 0x12)

	// instruction word straddling the end of memory
	mem.Write(0xfff, 0xab)
	test.ExpectEquality(t, mem.ReadWord(0xfff), 0xab12)
}
