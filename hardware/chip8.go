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

package hardware

import (
	"fmt"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/display"
	"github.com/gopher8/gopher8/hardware/govern"
	"github.com/gopher8/gopher8/hardware/input"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/preferences"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/prefs"
	"github.com/gopher8/gopher8/random"
)

// StepError is the pattern for errors returned by Step(). The wrapped error
// will be one of the cpu package error patterns.
const StepError = "chip8: %v"

// Chip8 is the root of the emulated machine.
type Chip8 struct {
	Prefs *preferences.Preferences

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Input   *input.Input
	Timers  *timer.Timers
	Random  *random.Random

	// instructions are paced to InstructionRate by Run() unless uncapped
	uncapped bool

	// number of instructions completed since the last reset. instructions
	// suspended by the wait-for-key instruction are counted once they resolve
	instructionCount int
}

// NewChip8 creates a new Chip8 and everything associated with the hardware.
// If the preferences argument is nil then a default set of preferences, not
// attached to any file, is used.
func NewChip8(p *preferences.Preferences) *Chip8 {
	if p == nil {
		p = preferences.NewDefaultPreferences()
	}

	c8 := &Chip8{
		Prefs:   p,
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Input:   input.NewInput(),
		Timers:  timer.NewTimers(nil),
		Random:  random.NewRandom(int64(p.RandSeed.Get().(int))),
	}

	c8.CPU = cpu.NewCPU(c8, c8.Mem, c8.Display, c8.Input, c8.Timers, c8.Random)

	// changes to the random seed take effect immediately
	c8.Prefs.RandSeed.SetHookPost(func(v prefs.Value) error {
		c8.Random.Reseed(int64(v.(int)))
		return nil
	})

	c8.Reset()

	return c8
}

// AllowLogging implements the logger.Permission interface.
func (c8 *Chip8) AllowLogging() bool {
	return c8.Prefs.Log.Get().(bool)
}

func (c8 *Chip8) String() string {
	return fmt.Sprintf("%s %s", c8.CPU, c8.Timers)
}

// Reset the machine to its initial configuration. Memory is cleared and the
// font is installed. Registers, stack, display and timers are zeroed and the
// program counter is set to the start of the program area.
func (c8 *Chip8) Reset() {
	c8.Mem.Reset()
	c8.CPU.Reset()
	c8.Display.Reset()
	c8.Input.Reset()
	c8.Timers.Reset()
	c8.Random.Reset()
	c8.instructionCount = 0
	logger.Log(c8, "chip8", "reset")
}

// Load resets the machine and then copies the program data into memory. If
// the data is too large the returned error will be a memory.TooLarge error
// and the machine will be left in its reset state.
func (c8 *Chip8) Load(data []uint8) error {
	c8.Reset()

	err := c8.Mem.Load(data)
	if err != nil {
		logger.Log(c8, "chip8", err)
		return err
	}

	logger.Logf(c8, "chip8", "program loaded (%d bytes)", len(data))

	return nil
}

// tick is called by the CPU once an instruction has completed.
func (c8 *Chip8) tick() error {
	c8.Timers.Tick()
	c8.instructionCount++
	return nil
}

// Step the machine forward one instruction. Pending input events are
// processed before the instruction is executed.
//
// If the CPU is waiting for a key then Step() returns immediately unless a
// key has been pressed.
func (c8 *Chip8) Step() error {
	c8.Input.Process()

	err := c8.CPU.ExecuteInstruction(c8.tick)
	if err != nil {
		logger.Log(c8, "chip8", err)
		return curated.Errorf(StepError, err)
	}

	return nil
}

// SubState returns the sub-state of the machine. The sub-state is only
// meaningful if the machine is in the govern.Running state.
func (c8 *Chip8) SubState() govern.SubState {
	if c8.CPU.IsWaitingForKey() {
		return govern.WaitingForKey
	}
	return govern.Normal
}

// InstructionCount returns the number of instructions completed since the
// machine was last reset.
func (c8 *Chip8) InstructionCount() int {
	return c8.instructionCount
}

// SetUncapped removes the pacing of instructions by Run(). Instructions will
// run as quickly as possible.
func (c8 *Chip8) SetUncapped(uncapped bool) {
	c8.uncapped = uncapped
}
