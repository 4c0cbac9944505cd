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

import (
	"fmt"

	"github.com/gopher8/gopher8/curated"
)

// RendererError is the pattern for errors returned by a PixelRenderer.
const RendererError = "display: %v"

// PixelRenderer implementations display, or otherwise work with, the frames
// produced by the Display.
type PixelRenderer interface {
	// Render is called with a copy of the framebuffer every time Refresh()
	// is called and the framebuffer has changed since the previous call to
	// Refresh(). It is also called after a renderer has been added with
	// AddPixelRenderer()
	Render(frame Frame) error

	// EndRendering is called when no more frames will be sent.
	EndRendering() error
}

// Display is the framebuffer of the CHIP-8.
type Display struct {
	frame Frame

	// the framebuffer has changed since the last call to Refresh()
	dirty bool

	renderers []PixelRenderer
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	dsp := &Display{}
	dsp.Reset()
	return dsp
}

func (dsp *Display) String() string {
	return fmt.Sprintf("%dx%d (%d set)", Width, Height, dsp.frame.Count())
}

// Reset the framebuffer. All pixels are unset.
func (dsp *Display) Reset() {
	dsp.Clear()
}

// Clear unsets every pixel.
func (dsp *Display) Clear() {
	dsp.frame = Frame{}
	dsp.dirty = true
}

// DrawSprite XORs the sprite onto the framebuffer. The sprite is eight pixels
// wide and has as many rows as the length of the rows slice. The most
// significant bit of each row is the leftmost pixel.
//
// The x and y coordinates of every pixel wrap independently.
//
// Returns true if any pixel that was set has become unset.
func (dsp *Display) DrawSprite(x, y uint8, rows []uint8) (collision bool) {
	for r, b := range rows {
		py := (int(y) + r) % Height
		for c := range 8 {
			if b&(0x80>>c) == 0 {
				continue
			}
			px := (int(x) + c) % Width
			if dsp.frame[py][px] {
				collision = true
			}
			dsp.frame[py][px] = !dsp.frame[py][px]
		}
	}

	if len(rows) > 0 {
		dsp.dirty = true
	}

	return collision
}

// Pixel returns the state of the pixel at x, y. Coordinates wrap.
func (dsp *Display) Pixel(x, y int) bool {
	return dsp.frame.Pixel(x, y)
}

// Frame returns a copy of the current framebuffer.
func (dsp *Display) Frame() Frame {
	return dsp.frame
}

// IsDirty returns true if the framebuffer has changed since the last call to
// Refresh().
func (dsp *Display) IsDirty() bool {
	return dsp.dirty
}

// AddPixelRenderer registers an (additional) implementation of PixelRenderer.
// The renderer is sent the current frame immediately.
func (dsp *Display) AddPixelRenderer(r PixelRenderer) error {
	for _, e := range dsp.renderers {
		if e == r {
			return nil
		}
	}
	dsp.renderers = append(dsp.renderers, r)
	return r.Render(dsp.frame)
}

// RemovePixelRenderer removes a single PixelRenderer implementation from the
// list of renderers.
func (dsp *Display) RemovePixelRenderer(r PixelRenderer) {
	for i, e := range dsp.renderers {
		if e == r {
			dsp.renderers = append(dsp.renderers[:i], dsp.renderers[i+1:]...)
			return
		}
	}
}

// Refresh sends a copy of the framebuffer to every renderer if the
// framebuffer has changed since the last call to Refresh().
func (dsp *Display) Refresh() error {
	if !dsp.dirty {
		return nil
	}
	dsp.dirty = false

	for _, r := range dsp.renderers {
		if err := r.Render(dsp.frame); err != nil {
			return curated.Errorf(RendererError, err)
		}
	}
	return nil
}

// End tells every renderer that no more frames will be sent.
func (dsp *Display) End() error {
	var err error
	for _, r := range dsp.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = curated.Errorf(RendererError, e)
		}
	}
	return err
}
