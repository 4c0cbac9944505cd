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

// Package cpu emulates the CHIP-8 interpreter: instruction fetch, decode and
// execution. Each instruction is two bytes long and is read big-endian from
// the address pointed to by the program counter. The instruction word is
// decoded by the instructions package and executed against the registers,
// the call stack and the other parts of the machine.
//
// The instance of the CPU type requires implementations of the Memory,
// Display, Keypad, Timers and Random interfaces. In the full emulation these
// are provided by the hardware package.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function which is called once the
// instruction has been executed and before the program counter is advanced.
// The hardware package uses the callback to update the timers.
//
//	mc := cpu.NewCPU(logger.Allow, mem, dsp, keys, tmrs, rnd)
//
//	for {
//		err := mc.ExecuteInstruction(func() error {
//			tmrs.Tick()
//			return nil
//		})
//		if err != nil {
//			return err
//		}
//	}
//
// The program counter always advances by two after an instruction has been
// executed. Instructions which alter the flow of the program load the program
// counter with the target address minus two.
//
// Instruction words that do not decode to a known instruction are ignored.
//
// The wait-for-key instruction (Fx0A) suspends the CPU. While suspended,
// calls to ExecuteInstruction() do nothing except check for a key-down
// transition. The callback function is not called and the program counter is
// not advanced until a key is pressed.
//
// The call stack has room for 16 return addresses. A CALL when the stack is
// full or a RET when the stack is empty is an error. The error is returned by
// ExecuteInstruction() and the state of the CPU is left unchanged.
//
// The LastResult field can be probed for information about the most recent
// instruction.
package cpu
