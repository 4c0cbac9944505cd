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

// Package registers implements the register types of the CHIP-8 interpreter.
// The general purpose registers V0 to VF are instances of the Register type.
// The program counter and the index register are instances of the
// ProgramCounter and Index types respectively.
//
// The arithmetic functions of the Register type return the flag that results
// from the operation but never write to the VF register themselves. It is the
// responsibility of the caller (the CPU) to decide when the flag is written.
package registers
