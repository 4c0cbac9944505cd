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

package input_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/input"
	"github.com/gopher8/gopher8/test"
)

func TestSnapshot(t *testing.T) {
	inp := input.NewInput()

	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x5, Pressed: true}))

	// snapshot does not change until Process() is called
	test.ExpectFailure(t, inp.IsPressed(0x5))
	inp.Process()
	test.ExpectSuccess(t, inp.IsPressed(0x5))
	test.ExpectEquality(t, inp.Snapshot().String(), "-----5----------")

	// snapshot remains the same over several steps
	inp.Process()
	test.ExpectSuccess(t, inp.IsPressed(0x5))

	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x5, Pressed: false}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0xf, Pressed: true}))
	inp.Process()
	test.ExpectFailure(t, inp.IsPressed(0x5))
	test.ExpectSuccess(t, inp.IsPressed(0xf))

	// out of range keys are never pressed
	test.ExpectFailure(t, inp.IsPressed(0x1f))
}

func TestInvalidKey(t *testing.T) {
	inp := input.NewInput()
	err := inp.PushEvent(input.Event{Key: 0x10, Pressed: true})
	test.ExpectSuccess(t, curated.Is(err, input.InvalidKey))
}

func TestQueueFull(t *testing.T) {
	inp := input.NewInput()

	var err error
	for i := 0; err == nil && i < 1000; i++ {
		err = inp.PushEvent(input.Event{Key: input.Key(i % input.NumKeys), Pressed: i%2 == 0})
	}
	test.ExpectSuccess(t, curated.Is(err, input.QueueFull))

	// the queue is usable again once processed
	inp.Process()
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x1, Pressed: true}))
}

func TestKeyDowns(t *testing.T) {
	inp := input.NewInput()

	_, ok := inp.NextKeyDown()
	test.ExpectFailure(t, ok)

	// a key pressed and released between two steps is not visible in the
	// snapshot but is seen as a key-down transition
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0xa, Pressed: true}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0xa, Pressed: false}))
	inp.Process()
	test.ExpectFailure(t, inp.IsPressed(0xa))

	k, ok := inp.NextKeyDown()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0xa)
	_, ok = inp.NextKeyDown()
	test.ExpectFailure(t, ok)

	// repeated key-down events for a held key are not transitions
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x3, Pressed: true}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x3, Pressed: true}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x7, Pressed: true}))
	inp.Process()

	k, ok = inp.NextKeyDown()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0x3)
	k, ok = inp.NextKeyDown()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0x7)
	_, ok = inp.NextKeyDown()
	test.ExpectFailure(t, ok)

	// flushing
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x3, Pressed: false}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x3, Pressed: true}))
	inp.Process()
	inp.FlushKeyDowns()
	_, ok = inp.NextKeyDown()
	test.ExpectFailure(t, ok)

	// the key is still held
	test.ExpectSuccess(t, inp.IsPressed(0x3))
}

func TestReset(t *testing.T) {
	inp := input.NewInput()
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Key: 0x2, Pressed: true}))
	inp.Process()
	inp.Reset()
	test.ExpectFailure(t, inp.IsPressed(0x2))
	_, ok := inp.NextKeyDown()
	test.ExpectFailure(t, ok)

	// key is still held so the next snapshot will show it
	inp.Process()
	test.ExpectSuccess(t, inp.IsPressed(0x2))
}
