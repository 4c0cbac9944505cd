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

// Package logger is the central log repository for gopher8. Log entries are
// kept in memory, up to a maximum number of entries, and can be written out
// on request with Write() or Tail(). Entries can also be echoed to an
// io.Writer as they are logged, see SetEcho().
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count. This is useful for events that can
// happen on every emulation step, such as an unrecognised instruction being
// executed in a loop.
//
// Every log call takes a Permission argument. Only if the AllowLogging()
// function returns true will the entry be added to the log. Use logger.Allow
// when logging should always happen.
package logger
