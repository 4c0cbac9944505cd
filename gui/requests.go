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

package gui

import (
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/govern"
	"github.com/gopher8/gopher8/userinput"
)

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the request will fail with a curated error.
const (
	// user input events are sent to the channel. events are dropped if the
	// channel is full. a nil channel stops events being sent.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan userinput.Event

	// notify GUI of emulation state. a GUI may show the paused state
	// differently.
	ReqState FeatureReq = "ReqState" // govern.State

	// show or hide the GUI.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool
)

// Sentinel error returned when the arguments to a FeatureReq are not of the
// expected type.
const (
	FeatureReqArguments = "gui: %v: unexpected arguments"
)

// EventChanArg returns the argument to a ReqSetEventChan request.
func EventChanArg(request FeatureReq, args []FeatureReqData) (chan userinput.Event, error) {
	if len(args) != 1 {
		return nil, curated.Errorf(FeatureReqArguments, request)
	}
	if args[0] == nil {
		return nil, nil
	}
	ch, ok := args[0].(chan userinput.Event)
	if !ok {
		return nil, curated.Errorf(FeatureReqArguments, request)
	}
	return ch, nil
}

// StateArg returns the argument to a ReqState request.
func StateArg(request FeatureReq, args []FeatureReqData) (govern.State, error) {
	if len(args) != 1 {
		return govern.EmulatorStart, curated.Errorf(FeatureReqArguments, request)
	}
	st, ok := args[0].(govern.State)
	if !ok {
		return govern.EmulatorStart, curated.Errorf(FeatureReqArguments, request)
	}
	return st, nil
}

// BoolArg returns the argument to a request that takes a single bool.
func BoolArg(request FeatureReq, args []FeatureReqData) (bool, error) {
	if len(args) != 1 {
		return false, curated.Errorf(FeatureReqArguments, request)
	}
	b, ok := args[0].(bool)
	if !ok {
		return false, curated.Errorf(FeatureReqArguments, request)
	}
	return b, nil
}

// SendEvent sends an event to the channel without blocking. Returns false if
// the event could not be sent.
func SendEvent(ch chan userinput.Event, ev userinput.Event) bool {
	if ch == nil {
		return false
	}
	select {
	case ch <- ev:
		return true
	default:
		return false
	}
}
