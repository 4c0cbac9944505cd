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

// Package instructions defines the CHIP-8 instruction set. Every instruction
// is described by a Definition in a fixed table. Decode() looks up the
// definition for a 16-bit instruction word and extracts the operand fields.
//
// Instruction words that do not match any definition decode to an
// Instruction with the Unrecognised operator. The CPU treats these as a
// no-op.
//
// The instruction word is divided into four nibbles. The conventional names
// for the operand fields are used throughout:
//
//	nnn	lowest 12 bits (an address)
//	x	second nibble (a register number)
//	y	third nibble (a register number)
//	n	lowest nibble
//	kk	lowest byte (an immediate value)
package instructions
