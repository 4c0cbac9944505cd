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

package instructions

// Operator identifies an instruction behaviour. It is a closed set; any
// instruction word which does not decode to one of these operators is
// Unrecognised.
type Operator int

// List of valid Operator values.
const (
	Unrecognised Operator = iota
	Sys
	Cls
	Ret
	Jp
	Call
	SeImm
	SneImm
	SeReg
	LdImm
	AddImm
	LdReg
	Or
	And
	Xor
	AddReg
	Sub
	Shr
	Subn
	Shl
	SneReg
	LdI
	JpV0
	Rnd
	Drw
	Skp
	Sknp
	LdVxDT
	LdVxK
	LdDTVx
	LdSTVx
	AddI
	LdF
	LdB
	LdIVx
	LdVxI
)

// Category describes the effect an instruction has on the machine. It is
// useful for instrumentation and for reasoning about how an instruction
// interacts with the program counter.
type Category int

// List of valid Category values.
const (
	// no effect at all
	Ignored Category = iota

	// affects registers only
	Data

	// writes to memory
	Memory

	// affects the framebuffer
	Display

	// loads the program counter directly
	Flow

	// pushes to or pops from the call stack
	Subroutine

	// conditionally skips the next instruction
	Skip

	// suspends execution until a key is pressed
	Wait
)

func (c Category) String() string {
	switch c {
	case Ignored:
		return "Ignored"
	case Data:
		return "Data"
	case Memory:
		return "Memory"
	case Display:
		return "Display"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Wait:
		return "Wait"
	}
	return "unknown category"
}

// OperandForm describes which of the operand fields in an instruction word
// are meaningful. Used when formatting an instruction.
type OperandForm int

// List of valid OperandForm values.
const (
	NoOperands OperandForm = iota
	Address               // nnn
	RegImm                // x, kk
	RegReg                // x, y
	RegRegNibble          // x, y, n
	Reg                   // x
)
