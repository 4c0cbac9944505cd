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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/hardware/govern"
	"github.com/pkg/errors"
)

// sentinel error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the program already loaded
// into the Chip8 instance for the specified duration. The emulation is run as
// quickly as possible unless capped is true.
//
// The number of instructions per second is written to output. If capped is
// true then the accuracy of that figure, as compared to
// hardware.InstructionRate, is also written.
func Check(output io.Writer, profile Profile, c8 *hardware.Chip8, capped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive (%s)", duration)
	}

	c8.SetUncapped(!capped)

	startCount := c8.InstructionCount()

	runner := func() error {
		timesUp := time.After(dur)

		// only check for end of measurement period every PerformanceBrake
		// instructions
		performanceBrake := 0

		return c8.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timesUp:
					return govern.Ending, timedOut
				default:
				}
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	num := c8.InstructionCount() - startCount
	ips, accuracy := CalcIPS(num, dur.Seconds())

	if capped {
		fmt.Fprintf(output, "%.2f ips (%d instructions in %.2f seconds) %.1f%%\n", ips, num, dur.Seconds(), accuracy)
	} else {
		fmt.Fprintf(output, "%.2f ips (%d instructions in %.2f seconds)\n", ips, num, dur.Seconds())
	}

	return nil
}

// CalcIPS takes the number of instructions and duration (in seconds) and
// returns the instructions-per-second and the accuracy of that value as a
// percentage of hardware.InstructionRate.
func CalcIPS(numInstructions int, duration float64) (ips float64, accuracy float64) {
	ips = float64(numInstructions) / duration
	accuracy = 100 * ips / hardware.InstructionRate
	return ips, accuracy
}
