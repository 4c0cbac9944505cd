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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// Each machine has its own Random instance. Instances created with the same
// non-zero seed return the same sequence of numbers. A seed of zero means
// that the seed is taken from the base seed, which is decided once when the
// program starts.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true before calling Reset(). This is useful for testing purposes.
package random
