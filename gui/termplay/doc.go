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

// Package termplay implements the gui.GUI interface by drawing the display
// in a terminal. Each character cell shows two pixels using the Unicode block
// characters, so the display needs 64 columns and 17 rows (including the
// status line).
//
// The terminal is put into raw mode with the termios package. Terminals do
// not report key releases so a key is released automatically a short time
// after it was last reported. Ctrl-C sends a userinput.EventQuit.
package termplay
