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

// Package memory implements the 4096 byte address space of the CHIP-8.
//
// The lowest 512 bytes (0x000 to 0x1ff) are reserved for the interpreter.
// The only thing placed there is the hexadecimal font, which occupies the
// first 80 bytes. Programs are always loaded at ProgramOrigin.
//
// All addresses wrap at 4096. There is no such thing as an address error in
// this memory model.
package memory
