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

package registers_test

import (
	"testing"

	"github.com/gopher8/gopher8/hardware/cpu/registers"
	"github.com/gopher8/gopher8/test"
)

func TestRegister(t *testing.T) {
	var carry bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.String(), "test=0x00")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry = r8.Add(2)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectFailure(t, carry)

	// addition boundary
	r8.Load(255)
	carry = r8.Add(1)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, r8.IsZero())

	r8.Load(0xf0)
	carry = r8.Add(0x20)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), 0x10)

	// exactly 255 is not a carry
	r8.Load(0xf0)
	carry = r8.Add(0x0f)
	test.ExpectFailure(t, carry)
	test.ExpectEquality(t, r8.Value(), 0xff)
}

func TestSubtraction(t *testing.T) {
	var noBorrow bool

	r8 := registers.NewRegister(11, "test")
	noBorrow = r8.Subtract(1)
	test.ExpectEquality(t, r8.Value(), 10)
	test.ExpectSuccess(t, noBorrow)

	// equal values do not borrow
	noBorrow = r8.Subtract(10)
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectSuccess(t, noBorrow)

	// subtract on boundary
	noBorrow = r8.Subtract(1)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectFailure(t, noBorrow)

	r8.Load(0x01)
	noBorrow = r8.Subtract(0x06)
	test.ExpectEquality(t, r8.Value(), 0xfb)
	test.ExpectFailure(t, noBorrow)

	// reverse subtraction
	r8.Load(0x06)
	noBorrow = r8.ReverseSubtract(0x01)
	test.ExpectEquality(t, r8.Value(), 0xfb)
	test.ExpectFailure(t, noBorrow)

	r8.Load(0x01)
	noBorrow = r8.ReverseSubtract(0x06)
	test.ExpectEquality(t, r8.Value(), 0x05)
	test.ExpectSuccess(t, noBorrow)
}

func TestBitwise(t *testing.T) {
	r8 := registers.NewRegister(0x21, "test")
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.XOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.OR(0x01)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	test.ExpectEquality(t, r8.ShiftLeft(), 1)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, r8.ShiftRight(), 0)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, r8.ShiftRight(), 1)
	test.ExpectEquality(t, r8.Value(), 0x3f)
	test.ExpectEquality(t, r8.ShiftLeft(), 0)
	test.ExpectEquality(t, r8.Value(), 0x7e)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x200)
	test.ExpectEquality(t, pc.Address(), 0x200)
	test.ExpectEquality(t, pc.String(), "0x0200")
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 0x202)
	pc.Load(0xfff)
	test.ExpectEquality(t, pc.Address(), 0xfff)

	// wrapping at 16 bits
	pc.Load(0xffff)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 0x0001)
}

func TestIndex(t *testing.T) {
	var i registers.Index
	test.ExpectEquality(t, i.Address(), 0)
	i.Load(0x500)
	i.Add(0xff)
	test.ExpectEquality(t, i.Address(), 0x5ff)
	test.ExpectEquality(t, i.Label(), "I")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer()
	test.ExpectSuccess(t, sp.IsEmpty())
	test.ExpectEquality(t, sp.Depth(), 0)
	test.ExpectEquality(t, sp.String(), "empty")

	sp.Increment()
	test.ExpectFailure(t, sp.IsEmpty())
	test.ExpectEquality(t, sp.Value(), 0)
	test.ExpectEquality(t, sp.Depth(), 1)

	for range 15 {
		sp.Increment()
	}
	test.ExpectEquality(t, sp.Value(), 15)
	test.ExpectEquality(t, sp.Depth(), 16)

	sp.Reset()
	test.ExpectSuccess(t, sp.IsEmpty())
	sp.Decrement()
	test.ExpectEquality(t, sp.Value(), 0xfe)
}
