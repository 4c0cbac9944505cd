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

import (
	"fmt"

	"github.com/gopher8/gopher8/hardware/cpu/instructions"
)

// Result records the outcome of the most recent call to ExecuteInstruction().
type Result struct {
	// the address of the instruction
	Address uint16

	// the decoded instruction. Instruction.Defn is nil if the word was not
	// recognised
	Instruction instructions.Instruction

	// the instruction was a skip instruction and the condition held
	Skipped bool

	// the CPU is suspended waiting for a key-down transition
	WaitingForKey bool

	// the instruction has completed and the program counter has advanced
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := fmt.Sprintf("%#03x %04x %s", r.Address, r.Instruction.Word, r.Instruction)
	if r.Skipped {
		s = fmt.Sprintf("%s (skipped)", s)
	}
	if r.WaitingForKey {
		s = fmt.Sprintf("%s (waiting)", s)
	}
	return s
}
