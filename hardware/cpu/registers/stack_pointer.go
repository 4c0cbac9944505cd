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

// StackEmpty is the value of the stack pointer when nothing has been pushed.
const StackEmpty = 0xff

// StackPointer indexes the most recently pushed entry of the call stack.
// When the stack is empty it holds the StackEmpty sentinel value.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type. The stack pointer will indicate an empty stack.
func NewStackPointer() StackPointer {
	return StackPointer{value: StackEmpty}
}

// Label returns an identifying string for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	if sp.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%d", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Depth returns the number of entries on the stack.
func (sp StackPointer) Depth() int {
	return int(sp.value + 1)
}

// IsEmpty returns true if the stack pointer holds the sentinel value.
func (sp StackPointer) IsEmpty() bool {
	return sp.value == StackEmpty
}

// Increment the stack pointer. Wraps at 256.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer. Wraps at 256.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Reset the stack pointer to the empty sentinel.
func (sp *StackPointer) Reset() {
	sp.value = StackEmpty
}
