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
	"strings"

	"github.com/gopher8/gopher8/hardware/cpu/instructions"
	"github.com/gopher8/gopher8/hardware/cpu/registers"
	"github.com/gopher8/gopher8/logger"
)

// Error patterns returned by ExecuteInstruction(). The values are the address
// of the instruction and the instruction word.
const (
	StackOverflow  = "cpu: stack overflow at %#03x (%#04x)"
	StackUnderflow = "cpu: stack underflow at %#03x (%#04x)"
)

// the number of general purpose registers
const NumRegisters = 16

// the register that is used as a flag by some instructions
const flagRegister = 0xf

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 16

// InitialPC is the value of the program counter after a reset.
const InitialPC = 0x200

// CPU implements the CHIP-8 interpreter. Register logic is implemented by the
// types in the registers sub-package.
type CPU struct {
	perm logger.Permission

	V  [NumRegisters]registers.Register
	I  registers.Index
	PC registers.ProgramCounter

	Stack [StackDepth]uint16
	SP    registers.StackPointer

	mem  Memory
	dsp  Display
	keys Keypad
	tmrs Timers
	rnd  Random

	// the register that will receive the key code when the wait-for-key
	// instruction is resolved. only meaningful when LastResult.WaitingForKey
	// is true
	waitRegister uint8

	// reusable buffer for sprite data
	sprite []uint8

	// result of the most recent instruction
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// will be in its reset state.
func NewCPU(perm logger.Permission, mem Memory, dsp Display, keys Keypad, tmrs Timers, rnd Random) *CPU {
	mc := &CPU{
		perm:   perm,
		mem:    mem,
		dsp:    dsp,
		keys:   keys,
		tmrs:   tmrs,
		rnd:    rnd,
		sprite: make([]uint8, 0, 15),
	}
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s=%s %s=%s %s=%s", mc.PC.Label(), mc.PC, mc.I.Label(), mc.I, mc.SP.Label(), mc.SP)
	for _, r := range mc.V {
		fmt.Fprintf(&s, " %s", r)
	}
	return s.String()
}

// Reset reinitialises all registers and empties the call stack. The program
// counter is set to InitialPC.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.I.Load(0)
	mc.PC.Load(InitialPC)
	mc.Stack = [StackDepth]uint16{}
	mc.SP.Reset()
	mc.waitRegister = 0
}

// IsWaitingForKey returns true if the CPU is suspended by the wait-for-key
// instruction.
func (mc *CPU) IsWaitingForKey() bool {
	return mc.LastResult.WaitingForKey
}

// NilTick can be used as an argument to ExecuteInstruction() when no
// additional work is required.
func NilTick() error {
	return nil
}

// ExecuteInstruction steps the CPU forward one instruction. The tick function
// is called after the instruction has executed and before the program counter
// is advanced.
//
// If the CPU is suspended by the wait-for-key instruction then the function
// returns immediately unless a key-down transition is waiting. The tick
// function is not called while the CPU is suspended.
func (mc *CPU) ExecuteInstruction(tick func() error) error {
	if mc.LastResult.WaitingForKey {
		return mc.resolveWait(tick)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	word := uint16(mc.mem.Read(mc.LastResult.Address))<<8 | uint16(mc.mem.Read(mc.LastResult.Address+1))
	mc.LastResult.Instruction = instructions.Decode(word)

	err := mc.execute(mc.LastResult.Instruction)
	if err != nil {
		return err
	}

	// the instruction suspended the CPU
	if mc.LastResult.WaitingForKey {
		return nil
	}

	return mc.complete(tick)
}

// finalise the current instruction by calling the tick function and advancing
// the program counter
func (mc *CPU) complete(tick func() error) error {
	err := tick()
	if err != nil {
		return err
	}
	mc.PC.Add(2)
	mc.LastResult.Final = true
	return nil
}

func (mc *CPU) resolveWait(tick func() error) error {
	key, ok := mc.keys.NextKeyDown()
	if !ok {
		return nil
	}

	mc.V[mc.waitRegister].Load(key)
	mc.LastResult.WaitingForKey = false
	logger.Logf(mc.perm, "cpu", "wait for key resolved: %s=%#02x", mc.V[mc.waitRegister].Label(), key)

	return mc.complete(tick)
}
