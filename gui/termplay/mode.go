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
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawMode puts the terminal into raw mode. returns the original attributes,
// which should be used with setMode() to restore the terminal, and the raw
// attributes.
func rawMode(fd uintptr) (unix.Termios, unix.Termios, error) {
	var canAttr unix.Termios
	err := termios.Tcgetattr(fd, &canAttr)
	if err != nil {
		return canAttr, canAttr, err
	}

	rawAttr := canAttr
	termios.Cfmakeraw(&rawAttr)

	err = setMode(fd, &rawAttr)
	if err != nil {
		return canAttr, canAttr, err
	}

	return canAttr, rawAttr, nil
}

// setMode applies the attributes to the terminal. pending input is discarded.
func setMode(fd uintptr, attr *unix.Termios) error {
	return termios.Tcsetattr(fd, termios.TCIFLUSH, attr)
}
