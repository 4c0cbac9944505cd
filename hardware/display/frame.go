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

package display

import "strings"

// Framebuffer dimensions.
const (
	Width  = 64
	Height = 32
)

// Frame is the state of every pixel in the framebuffer. Indexed by row and
// then by column. A Frame is a value type and is copied on assignment.
type Frame [Height][Width]bool

// Pixel returns the state of the pixel at x, y. Coordinates wrap.
func (f Frame) Pixel(x, y int) bool {
	return f[wrap(y, Height)][wrap(x, Width)]
}

// Count returns the number of set pixels.
func (f Frame) Count() int {
	var n int
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				n++
			}
		}
	}
	return n
}

// String returns the frame as rows of text. Set pixels are represented by a
// hash symbol and unset pixels by a full stop.
func (f Frame) String() string {
	var s strings.Builder
	s.Grow(Height * (Width + 1))
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

func wrap(v int, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
