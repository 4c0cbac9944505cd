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

package cpu_test

import (
	"testing"
	"time"

	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/display"
	"github.com/gopher8/gopher8/hardware/input"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/random"
	"github.com/gopher8/gopher8/test"
)

type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time {
	return c.now
}

// the parts of a machine that the cpu needs. the clock is under the control
// of the test
type machine struct {
	t    *testing.T
	mc   *cpu.CPU
	mem  *memory.Memory
	dsp  *display.Display
	inp  *input.Input
	tmrs *timer.Timers
	clk  *mockClock
}

func newMachine(t *testing.T, program ...uint16) *machine {
	t.Helper()

	m := &machine{
		t:   t,
		mem: memory.NewMemory(),
		dsp: display.NewDisplay(),
		inp: input.NewInput(),
		clk: &mockClock{now: time.Unix(0, 0)},
	}
	m.tmrs = timer.NewTimers(m.clk.Now)

	rnd := random.NewRandom(0)
	rnd.ZeroSeed = true
	rnd.Reset()

	m.mc = cpu.NewCPU(logger.Allow, m.mem, m.dsp, m.inp, m.tmrs, rnd)
	m.load(program...)

	return m
}

// load instruction words into memory starting at the program origin
func (m *machine) load(program ...uint16) {
	data := make([]uint8, 0, len(program)*2)
	for _, w := range program {
		data = append(data, uint8(w>>8), uint8(w))
	}
	test.DemandSuccess(m.t, m.mem.Load(data))
}

// step performs a single machine step in the same way as the hardware
// package: refresh the keypad, execute an instruction and tick the timers
func (m *machine) step() error {
	m.inp.Process()
	return m.mc.ExecuteInstruction(func() error {
		m.tmrs.Tick()
		return nil
	})
}

// stepN performs n steps. an error is fatal
func (m *machine) stepN(n int) {
	m.t.Helper()
	for range n {
		test.DemandSuccess(m.t, m.step())
	}
}

// exec places a single instruction at the current PC and executes it
func (m *machine) exec(word uint16) error {
	pc := m.mc.PC.Address()
	m.mem.Write(pc, uint8(word>>8))
	m.mem.Write(pc+1, uint8(word))
	return m.step()
}

func (m *machine) v(r int) uint8 {
	return m.mc.V[r].Value()
}

func (m *machine) setV(r int, val uint8) {
	m.mc.V[r].Load(val)
}

func (m *machine) press(key input.Key, pressed bool) {
	m.t.Helper()
	test.DemandSuccess(m.t, m.inp.PushEvent(input.Event{Key: key, Pressed: pressed}))
}
