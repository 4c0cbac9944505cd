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

package prefs

import (
	"fmt"
	"strings"
)

// a group of preference values specified on the command line. values are
// removed from the group as they are used.
type group map[string]Value

var commandLineStack []group

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a preferences string and adds it as a new
// group. The string is of the form:
//
//	key::value; key::value
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	g := make(group)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			g[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLineStack = append(commandLineStack, g)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the unused preferences of the group, sorted by key, in the same
// form as accepted by PushCommandLineStack().
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	g := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	unused := make([]string, 0, len(g))
	for _, k := range sortedKeys(g) {
		unused = append(unused, fmt.Sprintf("%s::%v", k, g[k]))
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the most recent
// group. The value is deleted when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	g := commandLineStack[len(commandLineStack)-1]
	if v, ok := g[key]; ok {
		delete(g, key)
		return true, v
	}

	return false, nil
}
