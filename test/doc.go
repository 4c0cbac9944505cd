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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare comparable
// values. The ExpectSuccess() and ExpectFailure() functions test for success
// and failure values, where a success value is true, a nil error or nil, and
// a failure value is false or a non-nil error.
//
// The Demand*() variants stop the test immediately when the expectation is
// not met. They should be used when continuing the test would be
// meaningless.
//
// CompareWriter and RingWriter are io.Writer implementations useful for
// testing output.
package test
