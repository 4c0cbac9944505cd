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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Initialising is used while a program is being loaded.
//
// Running can have a meaningful sub-state.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// SubState allows more detail for some states. Normal indicates that there is
// no more information to impart about the state.
type SubState int

// List of possible sub-states.
const (
	Normal SubState = iota
	WaitingForKey
)

func (s SubState) String() string {
	switch s {
	case WaitingForKey:
		return "Waiting for key"
	}
	return ""
}

// StateIntegrity checks whether the combination of state and sub-state makes
// sense.
//
// Rules:
//
//  1. Normal can coexist with any state
//
//  2. WaitingForKey can only be paired with the Running state
func StateIntegrity(state State, subState SubState) bool {
	if subState == Normal {
		return true
	}
	return state == Running && subState == WaitingForKey
}
