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
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/govern"
	"github.com/gopher8/gopher8/performance/limiter"
)

// InstructionRate is the number of instructions per second executed by Run().
const InstructionRate = 700

// RefreshRate is the number of times per second the display is refreshed by
// Run().
const RefreshRate = 60

// It can be expensive to do a full continue check after every instruction.
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running. Instructions are paced to InstructionRate
// unless SetUncapped() has been used. The display is refreshed at
// RefreshRate.
//
// The continueCheck function is called after every instruction, including
// while the CPU is waiting for a key, and controls whether the emulation
// continues. Run returns when continueCheck returns govern.Ending or an
// error, or when Step() returns an error.
func (c8 *Chip8) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	pace, err := limiter.NewLimiter(InstructionRate)
	if err != nil {
		return curated.Errorf("chip8: %v", err)
	}
	defer pace.Close()

	refresh, err := limiter.NewLimiter(RefreshRate)
	if err != nil {
		return curated.Errorf("chip8: %v", err)
	}
	defer refresh.Close()

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if !c8.uncapped {
				pace.Wait()
			}
			err := c8.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
			pace.Wait()
		default:
			return curated.Errorf("chip8: unsupported emulation state (%s) in Run() function", state)
		}

		if refresh.HasWaited() {
			err := c8.Display.Refresh()
			if err != nil {
				return curated.Errorf("chip8: %v", err)
			}
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return c8.Display.Refresh()
}

// RunForSteps runs the emulation for the specified number of steps, as
// quickly as possible. The display is refreshed once the steps are complete.
// Steps during which the CPU is waiting for a key are counted.
//
// The continueCheck function can be nil.
func (c8 *Chip8) RunForSteps(numSteps int, continueCheck func(step int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(step int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for step := 0; step < numSteps && state != govern.Ending; step++ {
		err := c8.Step()
		if err != nil {
			return err
		}

		state, err = continueCheck(step)
		if err != nil {
			return err
		}
	}

	return c8.Display.Refresh()
}
