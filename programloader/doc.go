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

// Package programloader is used to read CHIP-8 program images from a local
// file or from an http(s) URL.
//
// Program images are raw byte sequences with no header, so no validation of
// the data is possible beyond checking the SHA-1 hash when one is supplied.
// The size of the program is checked when it is loaded into the machine's
// memory, not here.
//
//	ld := programloader.NewLoader("pong.ch8")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//	return c8.Load(ld.Data)
package programloader
