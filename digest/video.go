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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopher8/gopher8/hardware/display"
)

// Video is an implementation of display.PixelRenderer that produces a SHA-1
// hash of every frame it is sent. The hash of each frame includes the hash of
// the previous frame so the final hash identifies the entire sequence of
// frames.
type Video struct {
	digest [sha1.Size]byte
	frames int

	// the previous digest followed by one byte per pixel
	pixels []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames included in the hash.
func (dig *Video) Frames() int {
	return dig.frames
}

// Render implements display.PixelRenderer interface.
func (dig *Video) Render(frame display.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the pixel data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := range frame {
		for x := range frame[y] {
			if frame[y][x] {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}

// EndRendering implements display.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
