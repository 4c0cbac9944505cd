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

// Package sdlplay implements the gui.GUI interface with an SDL window. The
// display is drawn either with the SDL renderer or, if the display.opengl
// preference is set, with OpenGL 2.1.
//
// SDL requires that window creation and event handling happen on the main
// thread. NewSdlPlay(), Service() and Destroy() must only be called from the
// main thread. Render() and SetFeature() are called from the emulation
// goroutine.
//
// Keyboard events are forwarded to the channel given by the ReqSetEventChan
// request as userinput.EventKeyboard values. Closing the window sends a
// userinput.EventQuit.
package sdlplay
