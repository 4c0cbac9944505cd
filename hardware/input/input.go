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

package input

import (
	"github.com/gopher8/gopher8/curated"
)

// Error patterns.
const (
	QueueFull  = "input: event queue is full: %v dropped"
	InvalidKey = "input: invalid key code (%#02x)"
)

// the number of events that can be waiting in the queue
const queueLength = 64

// the number of key-down transitions that are remembered. older transitions
// are forgotten
const maxKeyDowns = NumKeys

// Input is the keypad of the CHIP-8.
type Input struct {
	// events pushed onto the input queue
	pushed chan Event

	// the state of the keypad according to the events processed so far
	level State

	// the state of the keypad as seen by the instruction set. updated once
	// per step by Process()
	snapshot State

	// key-down transitions not yet consumed by NextKeyDown()
	keyDowns []Key
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{
		pushed:   make(chan Event, queueLength),
		keyDowns: make([]Key, 0, maxKeyDowns),
	}
}

func (inp *Input) String() string {
	return inp.snapshot.String()
}

// Reset forgets the snapshot and any unconsumed key-down transitions. Events
// still in the queue are not affected.
func (inp *Input) Reset() {
	inp.snapshot = State{}
	inp.keyDowns = inp.keyDowns[:0]
}

// PushEvent pushes an Event onto the queue. Will drop the event and return an
// error if queue is full.
func (inp *Input) PushEvent(ev Event) error {
	if !ev.Key.Valid() {
		return curated.Errorf(InvalidKey, uint8(ev.Key))
	}

	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull, ev)
	}
	return nil
}

// Process drains the event queue and updates the keypad snapshot. It should
// be called at the start of every step.
func (inp *Input) Process() {
	done := false
	for !done {
		select {
		case ev := <-inp.pushed:
			inp.handleEvent(ev)
		default:
			done = true
		}
	}
	inp.snapshot = inp.level
}

func (inp *Input) handleEvent(ev Event) {
	if ev.Pressed && !inp.level[ev.Key] {
		if len(inp.keyDowns) >= maxKeyDowns {
			inp.keyDowns = append(inp.keyDowns[:0], inp.keyDowns[1:]...)
		}
		inp.keyDowns = append(inp.keyDowns, ev.Key)
	}
	inp.level[ev.Key] = ev.Pressed
}

// IsPressed returns the state of the key in the current snapshot. Out of
// range keys are never pressed.
func (inp *Input) IsPressed(key uint8) bool {
	if !Key(key).Valid() {
		return false
	}
	return inp.snapshot[key]
}

// Snapshot returns a copy of the current snapshot.
func (inp *Input) Snapshot() State {
	return inp.snapshot
}

// NextKeyDown returns the oldest unconsumed key-down transition. The bool
// return value is false if there are no transitions waiting.
func (inp *Input) NextKeyDown() (uint8, bool) {
	if len(inp.keyDowns) == 0 {
		return 0, false
	}
	k := inp.keyDowns[0]
	inp.keyDowns = append(inp.keyDowns[:0], inp.keyDowns[1:]...)
	return uint8(k), true
}

// FlushKeyDowns forgets all unconsumed key-down transitions.
func (inp *Input) FlushKeyDowns() {
	inp.keyDowns = inp.keyDowns[:0]
}
