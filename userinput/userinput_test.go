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

package userinput_test

import (
	"testing"

	"github.com/gopher8/gopher8/hardware/input"
	"github.com/gopher8/gopher8/test"
	"github.com/gopher8/gopher8/userinput"
)

type mockHandler struct {
	events []input.Event
}

func (h *mockHandler) PushEvent(ev input.Event) error {
	h.events = append(h.events, ev)
	return nil
}

func TestKeyCode(t *testing.T) {
	layout := []string{
		"X", "1", "2", "3",
		"Q", "W", "E", "A",
		"S", "D", "Z", "C",
		"4", "R", "F", "V",
	}

	for i, key := range layout {
		k, ok := userinput.KeyCode(key)
		test.ExpectSuccess(t, ok, key)
		test.ExpectEquality(t, k, input.Key(i), key)
	}

	k, ok := userinput.KeyCode("q")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, input.Key(0x4))

	_, ok = userinput.KeyCode("5")
	test.ExpectFailure(t, ok)
}

func TestKeyboard(t *testing.T) {
	var c userinput.Controllers
	h := &mockHandler{}

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, h))
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true, Repeat: true}, h))
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false}, h))

	// unmapped key
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "9", Down: true}, h))
	test.ExpectFailure(t, c.LastKeyHandled)

	// modifiers prevent key presses but not key releases
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: true, Mod: userinput.KeyModCtrl}, h))
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: false, Mod: userinput.KeyModCtrl}, h))

	test.DemandEquality(t, len(h.events), 3)
	test.ExpectEquality(t, h.events[0], input.Event{Key: 0x5, Pressed: true})
	test.ExpectEquality(t, h.events[1], input.Event{Key: 0x5, Pressed: false})
	test.ExpectEquality(t, h.events[2], input.Event{Key: 0xf, Pressed: false})
}

func TestQuitAndPause(t *testing.T) {
	var c userinput.Controllers
	h := &mockHandler{}

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "P", Down: true}, h))
	test.ExpectSuccess(t, c.Paused)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "P", Down: false}, h))
	test.ExpectSuccess(t, c.Paused)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "p", Down: true}, h))
	test.ExpectFailure(t, c.Paused)

	test.ExpectFailure(t, c.Quit)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true}, h))
	test.ExpectSuccess(t, c.Quit)

	c.Quit = false
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventQuit{}, h))
	test.ExpectSuccess(t, c.Quit)

	test.ExpectEquality(t, len(h.events), 0)
}

// the keypad in the hardware package satisfies the HandleInput interface
func TestHardwareInput(t *testing.T) {
	var c userinput.Controllers
	inp := input.NewInput()

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "F", Down: true}, inp))
	inp.Process()
	test.ExpectSuccess(t, inp.IsPressed(0xe))
}
