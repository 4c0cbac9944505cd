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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Curated errors are created with the Errorf() function,
// which takes a formatting pattern and placeholder values, in the same way
// as fmt.Errorf(). Unlike fmt.Errorf() the formatting is deferred until the
// Error() function is called.
//
// The pattern is what identifies the error. Packages that return curated
// errors export their patterns so that callers can check for them:
//
//	const TooLarge = "memory: program too large (%d bytes, maximum %d)"
//
//	err := curated.Errorf(TooLarge, len(data), MaxProgramSize)
//
//	if curated.Is(err, TooLarge) {
//		...
//	}
//
// Has() is similar to Is() but searches the whole chain of curated errors.
// For example, an error wrapped with:
//
//	f := curated.Errorf("chip8: %v", err)
//
// will not satisfy Is(f, TooLarge) but will satisfy Has(f, TooLarge).
//
// Adjacent duplicate parts of an error message are removed by Error(). This
// means a package can prefix an error with its own name without worrying
// whether the error it is wrapping already has the same prefix.
package curated
