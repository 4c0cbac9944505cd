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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is a seedable random number generator.
type Random struct {
	rng  *rand.Rand
	seed uint64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means the base seed is used.
func NewRandom(seed int64) *Random {
	rnd := &Random{
		seed: uint64(seed),
	}
	rnd.Reset()
	return rnd
}

// Reset the sequence of random numbers.
func (rnd *Random) Reset() {
	seed := rnd.seed
	if seed == 0 && !rnd.ZeroSeed {
		seed = baseSeed
	}
	rnd.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Reseed changes the seed and resets the sequence of random numbers.
func (rnd *Random) Reseed(seed int64) {
	rnd.seed = uint64(seed)
	rnd.Reset()
}

// Byte returns a random number in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rng.UintN(256))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rng.IntN(n)
}
