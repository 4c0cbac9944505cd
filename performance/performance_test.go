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

package performance_test

import (
	"strings"
	"testing"

	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/hardware/preferences"
	"github.com/gopher8/gopher8/performance"
	"github.com/gopher8/gopher8/test"
)

func TestProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcIPS(t *testing.T) {
	ips, accuracy := performance.CalcIPS(1400, 2.0)
	test.ExpectEquality(t, ips, 700.0)
	test.ExpectEquality(t, accuracy, 100.0)
}

func TestCheck(t *testing.T) {
	prefs := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, prefs.Log.Set(false))

	c8 := hardware.NewChip8(prefs)
	test.DemandSuccess(t, c8.Load([]uint8{0x12, 0x00}))

	var s strings.Builder
	err := performance.Check(&s, performance.ProfileNone, c8, false, "100ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(s.String(), " ips ("))
	test.ExpectSuccess(t, c8.InstructionCount() > 0)

	err = performance.Check(&s, performance.ProfileNone, c8, false, "one second")
	test.ExpectFailure(t, err)
}
