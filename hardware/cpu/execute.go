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
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/cpu/instructions"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/logger"
)

// load the program counter so that the uniform advance at the end of the
// instruction lands on the target address
func (mc *CPU) jump(target uint16) {
	mc.PC.Load(target - 2)
}

// skip the next instruction if the condition is true
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC.Add(2)
		mc.LastResult.Skipped = true
	}
}

// the flag register is always written after the destination register so that
// it holds the flag even when it is also the destination
func (mc *CPU) setFlag(flag bool) {
	if flag {
		mc.V[flagRegister].Load(1)
	} else {
		mc.V[flagRegister].Load(0)
	}
}

func (mc *CPU) push(ins instructions.Instruction, returnAddress uint16) error {
	if mc.SP.Depth() >= StackDepth {
		return curated.Errorf(StackOverflow, mc.LastResult.Address, ins.Word)
	}
	mc.SP.Increment()
	mc.Stack[mc.SP.Value()] = returnAddress
	return nil
}

func (mc *CPU) pop(ins instructions.Instruction) (uint16, error) {
	if mc.SP.IsEmpty() {
		return 0, curated.Errorf(StackUnderflow, mc.LastResult.Address, ins.Word)
	}
	address := mc.Stack[mc.SP.Value()]
	mc.SP.Decrement()
	return address, nil
}

// execute a single decoded instruction
func (mc *CPU) execute(ins instructions.Instruction) error {
	vx := &mc.V[ins.X]
	vy := mc.V[ins.Y].Value()

	switch ins.Operator {
	case instructions.Sys:
		// machine code routines are not supported

	case instructions.Cls:
		mc.dsp.Clear()

	case instructions.Ret:
		address, err := mc.pop(ins)
		if err != nil {
			return err
		}
		mc.jump(address)

	case instructions.Jp:
		mc.jump(ins.NNN)

	case instructions.Call:
		err := mc.push(ins, mc.PC.Address()+2)
		if err != nil {
			return err
		}
		mc.jump(ins.NNN)

	case instructions.SeImm:
		mc.skip(vx.Value() == ins.KK)

	case instructions.SneImm:
		mc.skip(vx.Value() != ins.KK)

	case instructions.SeReg:
		mc.skip(vx.Value() == vy)

	case instructions.SneReg:
		mc.skip(vx.Value() != vy)

	case instructions.LdImm:
		vx.Load(ins.KK)

	case instructions.AddImm:
		_ = vx.Add(ins.KK)

	case instructions.LdReg:
		vx.Load(vy)

	case instructions.Or:
		vx.OR(vy)

	case instructions.And:
		vx.AND(vy)

	case instructions.Xor:
		vx.XOR(vy)

	case instructions.AddReg:
		mc.setFlag(vx.Add(vy))

	case instructions.Sub:
		mc.setFlag(vx.Subtract(vy))

	case instructions.Subn:
		mc.setFlag(vx.ReverseSubtract(vy))

	case instructions.Shr:
		mc.setFlag(vx.ShiftRight() == 1)

	case instructions.Shl:
		mc.setFlag(vx.ShiftLeft() == 1)

	case instructions.LdI:
		mc.I.Load(ins.NNN)

	case instructions.JpV0:
		mc.jump(ins.NNN + uint16(mc.V[0].Value()))

	case instructions.Rnd:
		vx.Load(mc.rnd.Byte() & ins.KK)

	case instructions.Drw:
		// coordinates are latched before the flag register is cleared
		x := vx.Value()
		y := vy
		mc.setFlag(false)

		mc.sprite = mc.sprite[:0]
		for r := range uint16(ins.N) {
			mc.sprite = append(mc.sprite, mc.mem.Read(mc.I.Address()+r))
		}
		if mc.dsp.DrawSprite(x, y, mc.sprite) {
			mc.setFlag(true)
		}

	case instructions.Skp:
		mc.skip(mc.keys.IsPressed(vx.Value()))

	case instructions.Sknp:
		mc.skip(!mc.keys.IsPressed(vx.Value()))

	case instructions.LdVxDT:
		vx.Load(mc.tmrs.DelayTimer())

	case instructions.LdVxK:
		// key-down transitions that happened before the instruction are not
		// candidates for resolving the wait
		mc.keys.FlushKeyDowns()
		mc.waitRegister = ins.X
		mc.LastResult.WaitingForKey = true
		logger.Logf(mc.perm, "cpu", "waiting for key at %#03x", mc.LastResult.Address)

	case instructions.LdDTVx:
		mc.tmrs.SetDelayTimer(vx.Value())

	case instructions.LdSTVx:
		mc.tmrs.SetSoundTimer(vx.Value())

	case instructions.AddI:
		mc.I.Add(uint16(vx.Value()))

	case instructions.LdF:
		mc.I.Load(memory.FontAddress(vx.Value()))

	case instructions.LdB:
		v := vx.Value()
		mc.mem.Write(mc.I.Address(), v/100)
		mc.mem.Write(mc.I.Address()+1, (v/10)%10)
		mc.mem.Write(mc.I.Address()+2, v%10)

	case instructions.LdIVx:
		// registers V0 up to but not including VX
		for c := range uint16(ins.X) {
			mc.mem.Write(mc.I.Address()+c, mc.V[c].Value())
		}

	case instructions.LdVxI:
		// registers V0 up to and including VX
		for c := range uint16(ins.X) + 1 {
			mc.V[c].Load(mc.mem.Read(mc.I.Address() + c))
		}

	default:
		logger.Logf(mc.perm, "cpu", "unrecognised instruction %04x at %#03x", ins.Word, mc.LastResult.Address)
	}

	return nil
}
