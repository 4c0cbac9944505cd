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

// Package input handles the 16 key hexadecimal keypad of the CHIP-8.
//
// Front ends push key events onto the input queue with PushEvent(). PushEvent
// is safe to call from any goroutine. The queue is drained by Process(), which
// must be called once at the start of every machine step. Process() updates
// the keypad snapshot, which is what the instruction set consults when
// testing whether a key is pressed.
//
// In addition to the snapshot, Process() records every key-down transition.
// The transitions are consumed with NextKeyDown() and allow the wait-for-key
// instruction to see key presses that happen entirely between two steps.
package input
