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

package registers

import (
	"fmt"
)

// Register is an 8-bit data register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the value of the register as a 16-bit value. Useful for
// address calculations.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsZero returns true if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Result wraps at 256. Returns true if the unwrapped
// result was greater than 255.
func (r *Register) Add(val uint8) (carry bool) {
	sum := uint16(r.value) + uint16(val)
	r.value = uint8(sum)
	return sum > 0xff
}

// Subtract value from register. Result wraps at 256. Returns true if no
// borrow was required, ie. the original value was greater than or equal to
// val.
func (r *Register) Subtract(val uint8) (noBorrow bool) {
	noBorrow = r.value >= val
	r.value -= val
	return noBorrow
}

// ReverseSubtract loads the register with val minus the register. Returns
// true if no borrow was required, ie. val was greater than or equal to the
// original value.
func (r *Register) ReverseSubtract(val uint8) (noBorrow bool) {
	noBorrow = val >= r.value
	r.value = val - r.value
	return noBorrow
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// ShiftRight shifts the register right by one bit. Returns the bit that was
// shifted out (bit 0 of the original value).
func (r *Register) ShiftRight() (out uint8) {
	out = r.value & 0x01
	r.value >>= 1
	return out
}

// ShiftLeft shifts the register left by one bit. Returns the bit that was
// shifted out (bit 7 of the original value).
func (r *Register) ShiftLeft() (out uint8) {
	out = r.value >> 7
	r.value <<= 1
	return out
}
