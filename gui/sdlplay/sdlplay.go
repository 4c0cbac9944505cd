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
	"io"
	"sync"

	"github.com/gopher8/gopher8/gui"
	"github.com/gopher8/gopher8/hardware/display"
	"github.com/gopher8/gopher8/hardware/govern"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/performance/limiter"
	"github.com/gopher8/gopher8/userinput"
	"github.com/gopher8/gopher8/version"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// title of the window.
const windowTitle = version.ApplicationName

// the rate at which Service() runs.
const serviceRate = 60

// number of bytes per pixel in the pixels array.
const pixelDepth = 4

// presenter draws the pixels array to the window.
type presenter interface {
	present(pixels []byte) error
	destroy() error
}

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	prefs *gui.Preferences

	window *sdl.Window
	pres   presenter

	// paces calls to Service()
	lmtr *limiter.Limiter

	// functions that must be run on the main thread. results are returned
	// over the serviceErr channel
	service    chan func()
	serviceErr chan error

	// fields shared between the emulation goroutine and the main thread
	crit    sync.Mutex
	frame   display.Frame
	pending bool
	events  chan userinput.Event
	state   govern.State

	// the state shown in the window title
	shownState govern.State

	// RGBA pixels for the presenter. only used on the main thread
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(prefs *gui.Preferences) (*SdlPlay, error) {
	if prefs == nil {
		prefs = gui.NewDefaultPreferences()
	}

	scr := &SdlPlay{
		prefs:      prefs,
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
		pixels:     make([]byte, display.Width*display.Height*pixelDepth),
		state:      govern.Initialising,
		shownState: govern.Initialising,
	}

	var err error

	scr.lmtr, err = limiter.NewLimiter(serviceRate)
	if err != nil {
		return nil, errors.Wrap(err, "sdl")
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		scr.lmtr.Close()
		return nil, errors.Wrap(err, "sdl")
	}

	scale := int32(prefs.Scale.Get().(int))
	w := int32(display.Width) * scale
	h := int32(display.Height) * scale

	if prefs.OpenGL.Get().(bool) {
		err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
		if err == nil {
			err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
		}
		if err != nil {
			scr.abandon()
			return nil, errors.Wrap(err, "sdl")
		}

		scr.window, err = sdl.CreateWindow(windowTitle,
			int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
			w, h, uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN))
		if err != nil {
			scr.abandon()
			return nil, errors.Wrap(err, "sdl")
		}

		scr.pres, err = newGLPresenter(scr.window)
	} else {
		scr.window, err = sdl.CreateWindow(windowTitle,
			int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
			w, h, uint32(sdl.WINDOW_HIDDEN))
		if err != nil {
			scr.abandon()
			return nil, errors.Wrap(err, "sdl")
		}

		scr.pres, err = newRendererPresenter(scr.window)
	}
	if err != nil {
		scr.abandon()
		return nil, errors.Wrap(err, "sdl")
	}

	// start with a blank display
	scr.updatePixels(display.Frame{})
	err = scr.pres.present(scr.pixels)
	if err != nil {
		scr.abandon()
		return nil, errors.Wrap(err, "sdl")
	}

	logger.Logf(logger.Allow, "sdl", "window %dx%d (scale %d)", w, h, scale)

	return scr, nil
}

// release everything created by a failed NewSdlPlay().
func (scr *SdlPlay) abandon() {
	if scr.pres != nil {
		_ = scr.pres.destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
	scr.lmtr.Close()
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	err := scr.pres.destroy()
	if err != nil {
		fmt.Fprintf(output, "sdl: %v\n", err)
	}
	err = scr.window.Destroy()
	if err != nil {
		fmt.Fprintf(output, "sdl: %v\n", err)
	}
	sdl.Quit()
	scr.lmtr.Close()
}

// Render implements the display.PixelRenderer interface. The frame is
// presented by the next call to Service().
func (scr *SdlPlay) Render(frame display.Frame) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.frame = frame
	scr.pending = true
	return nil
}

// EndRendering implements the display.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return nil
}

// IsVisible returns true if the window is showing.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) IsVisible() bool {
	flgs := scr.window.GetFlags()
	return flgs&sdl.WINDOW_SHOWN == sdl.WINDOW_SHOWN
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// updatePixels converts the frame to RGBA values using the foreground and
// background colours from the preferences.
func (scr *SdlPlay) updatePixels(frame display.Frame) {
	fg, bg := scr.prefs.Colours()
	i := 0
	for y := range frame {
		for x := range frame[y] {
			c := bg
			if frame[y][x] {
				c = fg
			}
			scr.pixels[i] = c.R
			scr.pixels[i+1] = c.G
			scr.pixels[i+2] = c.B
			scr.pixels[i+3] = c.A
			i += pixelDepth
		}
	}
}
