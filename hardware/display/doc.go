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

// Package display implements the 64x32 monochrome framebuffer.
//
// The framebuffer is only changed by the Clear() and DrawSprite() functions.
// Sprites are drawn by XORing each sprite pixel with the existing pixel.
// Coordinates wrap on both axes.
//
// Front ends receive a copy of the framebuffer through the PixelRenderer
// interface. Copies are taken between instructions so a renderer running on
// another goroutine never sees a partially drawn frame. Renderers are added
// with AddPixelRenderer() and are sent a new Frame by Refresh() whenever the
// framebuffer has changed.
package display
