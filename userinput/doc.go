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

// Package userinput handles input from real hardware that the user of the
// emulator is using to control the emulated machine.
//
// It can be thought of as a translation layer between the front end
// implementations (the SDL window and the terminal) and the hardware input
// package. Front ends translate their native events into the Event types
// defined here and pass them to Controllers.HandleUserInput().
//
// The host keyboard is mapped onto the 16 key keypad as follows:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   =>   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// Escape quits the emulation and P toggles the pause state.
package userinput
