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

package registers

import "fmt"

// Index represents the I register. Stored as a 16-bit value, only the lower
// 12 bits are effective as a memory address.
type Index struct {
	value uint16
}

// Label returns an identifying string for the index register.
func (i Index) Label() string {
	return "I"
}

func (i Index) String() string {
	return fmt.Sprintf("%#04x", i.value)
}

// Address returns the current value of the index register.
func (i Index) Address() uint16 {
	return i.value
}

// Load value into index register.
func (i *Index) Load(val uint16) {
	i.value = val
}

// Add value to index register. Wraps at 16 bits.
func (i *Index) Add(val uint16) {
	i.value += val
}
