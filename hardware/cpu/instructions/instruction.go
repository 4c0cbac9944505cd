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

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction word.
type Instruction struct {
	// the instruction word as read from memory
	Word uint16

	// Operator is Unrecognised if the word did not decode to a known
	// instruction. Defn will be nil in that case
	Operator Operator
	Defn     *Definition

	// operand fields. all fields are extracted for every instruction even if
	// the instruction does not use them
	X   uint8
	Y   uint8
	N   uint8
	KK  uint8
	NNN uint16
}

// Decode the instruction word.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word:     word,
		Operator: Unrecognised,
		X:        uint8(word>>8) & 0x0f,
		Y:        uint8(word>>4) & 0x0f,
		N:        uint8(word) & 0x0f,
		KK:       uint8(word),
		NNN:      word & 0x0fff,
	}

	for _, d := range families[word>>12] {
		if word&d.Mask == d.Value {
			ins.Defn = d
			ins.Operator = d.Operator
			break
		}
	}

	return ins
}

// IsRecognised returns false if the instruction word did not decode to a
// known instruction.
func (ins Instruction) IsRecognised() bool {
	return ins.Defn != nil
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() string {
	if ins.Defn == nil {
		return fmt.Sprintf("%04x (unrecognised)", ins.Word)
	}

	var operands string
	switch ins.Defn.Operands {
	case NoOperands:
		return ins.Defn.Mnemonic
	case Address:
		operands = fmt.Sprintf(ins.Defn.Format, ins.NNN)
	case RegImm:
		operands = fmt.Sprintf(ins.Defn.Format, ins.X, ins.KK)
	case RegReg:
		operands = fmt.Sprintf(ins.Defn.Format, ins.X, ins.Y)
	case RegRegNibble:
		operands = fmt.Sprintf(ins.Defn.Format, ins.X, ins.Y, ins.N)
	case Reg:
		operands = fmt.Sprintf(ins.Defn.Format, ins.X)
	}

	return strings.TrimSpace(fmt.Sprintf("%s %s", ins.Defn.Mnemonic, operands))
}
