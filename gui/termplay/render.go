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

package termplay

import (
	"strings"

	"github.com/gopher8/gopher8/hardware/display"
)

// each line of text shows two rows of pixels.
const (
	blockFull  = '█'
	blockUpper = '▀'
	blockLower = '▄'
)

// FrameLines converts a frame to lines of text. Each character cell shows two
// vertically adjacent pixels using block characters.
func FrameLines(frame display.Frame) []string {
	lines := make([]string, 0, display.Height/2)
	var s strings.Builder
	for y := 0; y < display.Height; y += 2 {
		s.Reset()
		for x := 0; x < display.Width; x++ {
			upper := frame[y][x]
			lower := frame[y+1][x]
			switch {
			case upper && lower:
				s.WriteRune(blockFull)
			case upper:
				s.WriteRune(blockUpper)
			case lower:
				s.WriteRune(blockLower)
			default:
				s.WriteRune(' ')
			}
		}
		lines = append(lines, s.String())
	}
	return lines
}
