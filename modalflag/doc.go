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

// Package modalflag wraps the flag package from the standard library so that
// a command line can be made up of modes, each mode having its own flags.
//
// Arguments are given to NewArgs() and then each mode is parsed in turn with
// Parse(). Before each Parse() the flags and sub-modes for that mode are
// added. For example, a program with a default RUN mode and a PERFORMANCE
// mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 16, "window scale")
//		...
//	}
//
// The first sub-mode is the default. It is selected when the next argument
// does not name a sub-mode, in which case the argument is left in place for
// the selected mode to parse.
//
// A -help flag is handled by Parse(), which writes the flags and sub-modes for
// the current mode to Output and returns ParseHelp.
package modalflag
