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

package test

import "strings"

// CompareWriter collects everything written to it so that output can be
// checked against expected text.
type CompareWriter struct {
	buffer strings.Builder
}

func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.buffer.Write(p)
}

// Clear discards the collected output.
func (cw *CompareWriter) Clear() {
	cw.buffer.Reset()
}

// Compare returns true if the collected output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.buffer.String() == s
}

// Contains returns true if s occurs anywhere in the collected output.
func (cw *CompareWriter) Contains(s string) bool {
	return strings.Contains(cw.buffer.String(), s)
}

// Lines returns the collected output split into lines. A trailing newline
// does not produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return cw.buffer.String()
}
