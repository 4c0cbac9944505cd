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

import "fmt"

// Definition defines each instruction in the instruction set.
type Definition struct {
	Operator Operator
	Mnemonic string

	// the instruction word matches the definition if:
	//
	//	word & Mask == Value
	Mask  uint16
	Value uint16

	Operands OperandForm
	Effect   Category

	// the pattern used to format the operands of the instruction. the
	// arguments to the pattern depend on the Operands field
	Format string
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s [%04x/%04x] (%s)", defn.Mnemonic, defn.Value, defn.Mask, defn.Effect)
}

// the definitions table. the order of definitions within each family is
// significant: Decode() uses the first matching definition so more specific
// masks must appear before less specific masks.
var definitions = []Definition{
	{Operator: Cls, Mnemonic: "CLS", Mask: 0xffff, Value: 0x00e0, Operands: NoOperands, Effect: Display},
	{Operator: Ret, Mnemonic: "RET", Mask: 0xffff, Value: 0x00ee, Operands: NoOperands, Effect: Subroutine},
	{Operator: Sys, Mnemonic: "SYS", Mask: 0xf000, Value: 0x0000, Operands: Address, Effect: Ignored, Format: "%#03x"},
	{Operator: Jp, Mnemonic: "JP", Mask: 0xf000, Value: 0x1000, Operands: Address, Effect: Flow, Format: "%#03x"},
	{Operator: Call, Mnemonic: "CALL", Mask: 0xf000, Value: 0x2000, Operands: Address, Effect: Subroutine, Format: "%#03x"},
	{Operator: SeImm, Mnemonic: "SE", Mask: 0xf000, Value: 0x3000, Operands: RegImm, Effect: Skip, Format: "V%X, %#02x"},
	{Operator: SneImm, Mnemonic: "SNE", Mask: 0xf000, Value: 0x4000, Operands: RegImm, Effect: Skip, Format: "V%X, %#02x"},
	{Operator: SeReg, Mnemonic: "SE", Mask: 0xf000, Value: 0x5000, Operands: RegReg, Effect: Skip, Format: "V%X, V%X"},
	{Operator: LdImm, Mnemonic: "LD", Mask: 0xf000, Value: 0x6000, Operands: RegImm, Effect: Data, Format: "V%X, %#02x"},
	{Operator: AddImm, Mnemonic: "ADD", Mask: 0xf000, Value: 0x7000, Operands: RegImm, Effect: Data, Format: "V%X, %#02x"},
	{Operator: LdReg, Mnemonic: "LD", Mask: 0xf00f, Value: 0x8000, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: Or, Mnemonic: "OR", Mask: 0xf00f, Value: 0x8001, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: And, Mnemonic: "AND", Mask: 0xf00f, Value: 0x8002, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: Xor, Mnemonic: "XOR", Mask: 0xf00f, Value: 0x8003, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: AddReg, Mnemonic: "ADD", Mask: 0xf00f, Value: 0x8004, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: Sub, Mnemonic: "SUB", Mask: 0xf00f, Value: 0x8005, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: Shr, Mnemonic: "SHR", Mask: 0xf00f, Value: 0x8006, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: Subn, Mnemonic: "SUBN", Mask: 0xf00f, Value: 0x8007, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: Shl, Mnemonic: "SHL", Mask: 0xf00f, Value: 0x800e, Operands: RegReg, Effect: Data, Format: "V%X, V%X"},
	{Operator: SneReg, Mnemonic: "SNE", Mask: 0xf000, Value: 0x9000, Operands: RegReg, Effect: Skip, Format: "V%X, V%X"},
	{Operator: LdI, Mnemonic: "LD", Mask: 0xf000, Value: 0xa000, Operands: Address, Effect: Data, Format: "I, %#03x"},
	{Operator: JpV0, Mnemonic: "JP", Mask: 0xf000, Value: 0xb000, Operands: Address, Effect: Flow, Format: "V0, %#03x"},
	{Operator: Rnd, Mnemonic: "RND", Mask: 0xf000, Value: 0xc000, Operands: RegImm, Effect: Data, Format: "V%X, %#02x"},
	{Operator: Drw, Mnemonic: "DRW", Mask: 0xf000, Value: 0xd000, Operands: RegRegNibble, Effect: Display, Format: "V%X, V%X, %d"},
	{Operator: Skp, Mnemonic: "SKP", Mask: 0xf0ff, Value: 0xe09e, Operands: Reg, Effect: Skip, Format: "V%X"},
	{Operator: Sknp, Mnemonic: "SKNP", Mask: 0xf0ff, Value: 0xe0a1, Operands: Reg, Effect: Skip, Format: "V%X"},
	{Operator: LdVxDT, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf007, Operands: Reg, Effect: Data, Format: "V%X, DT"},
	{Operator: LdVxK, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf00a, Operands: Reg, Effect: Wait, Format: "V%X, K"},
	{Operator: LdDTVx, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf015, Operands: Reg, Effect: Data, Format: "DT, V%X"},
	{Operator: LdSTVx, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf018, Operands: Reg, Effect: Data, Format: "ST, V%X"},
	{Operator: AddI, Mnemonic: "ADD", Mask: 0xf0ff, Value: 0xf01e, Operands: Reg, Effect: Data, Format: "I, V%X"},
	{Operator: LdF, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf029, Operands: Reg, Effect: Data, Format: "F, V%X"},
	{Operator: LdB, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf033, Operands: Reg, Effect: Memory, Format: "B, V%X"},
	{Operator: LdIVx, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf055, Operands: Reg, Effect: Memory, Format: "[I], V%X"},
	{Operator: LdVxI, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf065, Operands: Reg, Effect: Data, Format: "V%X, [I]"},
}

// definitions indexed by the high nibble of the instruction word
var families [16][]*Definition

func init() {
	for i := range definitions {
		d := &definitions[i]
		f := d.Value >> 12
		families[f] = append(families[f], d)
	}
}

// GetDefinitions returns a copy of the definitions table.
func GetDefinitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions)
	return d
}
