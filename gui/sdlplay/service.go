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

package sdlplay

import (
	"fmt"
	"strings"

	"github.com/gopher8/gopher8/gui"
	"github.com/gopher8/gopher8/hardware/govern"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			mod := userinput.KeyModNone

			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			switch ev.Type {
			case sdl.KEYDOWN, sdl.KEYUP:
				scr.sendEvent(userinput.EventKeyboard{
					Key:    strings.ToUpper(sdl.GetKeyName(ev.Keysym.Sym)),
					Down:   ev.Type == sdl.KEYDOWN,
					Mod:    mod,
					Repeat: ev.Repeat != 0,
				})
			}
		}
	}

	scr.crit.Lock()
	frame := scr.frame
	pending := scr.pending
	scr.pending = false
	state := scr.state
	scr.crit.Unlock()

	if pending {
		scr.updatePixels(frame)
		err := scr.pres.present(scr.pixels)
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
	}

	if state != scr.shownState {
		scr.shownState = state
		if state == govern.Paused {
			scr.window.SetTitle(fmt.Sprintf("%s (paused)", windowTitle))
		} else {
			scr.window.SetTitle(windowTitle)
		}
	}

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		f()
	default:
	}

	scr.lmtr.Wait()
}

func (scr *SdlPlay) sendEvent(ev userinput.Event) {
	scr.crit.Lock()
	ch := scr.events
	scr.crit.Unlock()

	if ch != nil && !gui.SendEvent(ch, ev) {
		logger.Logf(logger.Allow, "sdl", "event dropped: %T", ev)
	}
}
