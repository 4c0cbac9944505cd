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
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/gui"
)

// SetFeature implements gui.GUI interface. Requests that need the main thread
// are run by the next call to Service() and SetFeature() waits for them to
// complete.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetEventChan:
		ch, err := gui.EventChanArg(request, args)
		if err != nil {
			return err
		}
		scr.crit.Lock()
		scr.events = ch
		scr.crit.Unlock()

	case gui.ReqState:
		st, err := gui.StateArg(request, args)
		if err != nil {
			return err
		}
		scr.crit.Lock()
		scr.state = st
		scr.crit.Unlock()

	case gui.ReqSetVisibility:
		show, err := gui.BoolArg(request, args)
		if err != nil {
			return err
		}
		scr.service <- func() {
			scr.showWindow(show)
			scr.serviceErr <- nil
		}
		return <-scr.serviceErr

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}
