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

package logger

// Permission is implemented by anything that makes log requests and that may
// need to stop its own logging. The Chip8 type is the main example: its
// logging is controlled by the hardware.log preference.
type Permission interface {
	AllowLogging() bool
}

// fixed permissions
type fixed bool

func (p fixed) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are fixed permissions. Allow is used for log entries that
// should always be made.
var (
	Allow Permission = fixed(true)
	Deny  Permission = fixed(false)
)
