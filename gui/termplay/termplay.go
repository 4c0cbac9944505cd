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

package termplay

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/gui"
	"github.com/gopher8/gopher8/hardware/display"
	"github.com/gopher8/gopher8/hardware/govern"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/performance/limiter"
	"github.com/gopher8/gopher8/userinput"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Sentinel error returned by NewTermPlay() if the input or output is not a
// terminal.
const NotATerminal = "termplay: %s is not a terminal"

// DefaultStyle is the mgutz/ansi style used to draw the display.
const DefaultStyle = "white+h:black"

// the rate at which Service() runs.
const serviceRate = 60

// control sequences not provided by the ansi package.
const (
	cursorHide  = "\033[?25l"
	cursorShow  = "\033[?25h"
	cursorHome  = "\033[H"
	clearScreen = "\033[2J"
	eraseLine   = "\033[2K"
)

// TermPlay implements the gui.GUI interface by drawing the display in a
// terminal.
type TermPlay struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// colour codes surrounding every line of the display
	penOn  string
	penOff string

	lmtr *limiter.Limiter
	keys *keyTracker

	// key names read from the terminal by the reader goroutine
	read chan []string

	// fields shared between the emulation goroutine and the main thread
	crit    sync.Mutex
	frame   display.Frame
	pending bool
	events  chan userinput.Event
	state   govern.State
	visible bool

	// the state shown in the status line
	shownState govern.State
}

// NewTermPlay is the preferred method of initialisation for TermPlay. The
// style is a mgutz/ansi style string. The empty string selects DefaultStyle.
//
// The terminal is put into raw mode until Destroy() is called.
func NewTermPlay(input *os.File, output *os.File, style string) (*TermPlay, error) {
	if !isatty.IsTerminal(input.Fd()) {
		return nil, curated.Errorf(NotATerminal, input.Name())
	}
	if !isatty.IsTerminal(output.Fd()) {
		return nil, curated.Errorf(NotATerminal, output.Name())
	}

	if style == "" {
		style = DefaultStyle
	}

	trm := &TermPlay{
		input:      input,
		output:     output,
		penOn:      ansi.ColorCode(style),
		penOff:     ansi.Reset,
		keys:       newKeyTracker(),
		read:       make(chan []string, 64),
		state:      govern.Initialising,
		shownState: govern.Initialising,
	}

	var err error

	trm.lmtr, err = limiter.NewLimiter(serviceRate)
	if err != nil {
		return nil, errors.Wrap(err, "termplay")
	}

	trm.canAttr, trm.rawAttr, err = rawMode(input.Fd())
	if err != nil {
		trm.lmtr.Close()
		return nil, errors.Wrap(err, "termplay")
	}

	go trm.reader()

	logger.Log(logger.Allow, "termplay", "terminal in raw mode")

	return trm, nil
}

// reader runs as a goroutine for the lifetime of the program. it is not
// possible to interrupt a blocking read of the terminal so the goroutine is
// never stopped.
func (trm *TermPlay) reader() {
	buf := make([]byte, 32)
	for {
		n, err := trm.input.Read(buf)
		if err != nil {
			logger.Log(logger.Allow, "termplay", err)
			return
		}

		names, quit := KeyNames(buf[:n])
		if quit {
			trm.sendEvent(userinput.EventQuit{})
		}
		if len(names) > 0 {
			trm.read <- names
		}
	}
}

// Destroy implements GuiCreator interface. The terminal is returned to
// canonical mode.
func (trm *TermPlay) Destroy(output io.Writer) {
	trm.lmtr.Close()

	fmt.Fprint(trm.output, ansi.Reset, cursorShow, "\r\n")

	err := setMode(trm.input.Fd(), &trm.canAttr)
	if err != nil {
		fmt.Fprintf(output, "termplay: %v\n", err)
	}
}

// Service implements GuiCreator interface.
func (trm *TermPlay) Service() {
	now := time.Now()

	// key presses from the reader. every press of a key that is not already
	// held is a key-down event
	done := false
	for !done {
		select {
		case names := <-trm.read:
			for _, n := range names {
				if trm.keys.press(n, now) {
					trm.sendEvent(userinput.EventKeyboard{Key: n, Down: true})
				}
			}
		default:
			done = true
		}
	}

	for _, n := range trm.keys.expire(now) {
		trm.sendEvent(userinput.EventKeyboard{Key: n, Down: false})
	}

	trm.crit.Lock()
	frame := trm.frame
	pending := trm.pending
	trm.pending = false
	state := trm.state
	visible := trm.visible
	trm.crit.Unlock()

	if visible && (pending || state != trm.shownState) {
		trm.shownState = state
		trm.draw(frame, state)
	}

	trm.lmtr.Wait()
}

func (trm *TermPlay) draw(frame display.Frame, state govern.State) {
	var s strings.Builder
	s.WriteString(cursorHome)
	for _, l := range FrameLines(frame) {
		s.WriteString(trm.penOn)
		s.WriteString(l)
		s.WriteString(trm.penOff)
		s.WriteString("\r\n")
	}

	// status line
	s.WriteString(eraseLine)
	if state == govern.Paused {
		s.WriteString(ansi.Color("paused", "yellow+b"))
	}
	s.WriteString("\r")

	_, err := io.WriteString(trm.output, s.String())
	if err != nil {
		logger.Log(logger.Allow, "termplay", err)
	}
}

// Render implements the display.PixelRenderer interface.
func (trm *TermPlay) Render(frame display.Frame) error {
	trm.crit.Lock()
	defer trm.crit.Unlock()
	trm.frame = frame
	trm.pending = true
	return nil
}

// EndRendering implements the display.PixelRenderer interface.
func (trm *TermPlay) EndRendering() error {
	return nil
}

// SetFeature implements gui.GUI interface.
func (trm *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetEventChan:
		ch, err := gui.EventChanArg(request, args)
		if err != nil {
			return err
		}
		trm.crit.Lock()
		trm.events = ch
		trm.crit.Unlock()

	case gui.ReqState:
		st, err := gui.StateArg(request, args)
		if err != nil {
			return err
		}
		trm.crit.Lock()
		trm.state = st
		trm.crit.Unlock()

	case gui.ReqSetVisibility:
		show, err := gui.BoolArg(request, args)
		if err != nil {
			return err
		}
		trm.crit.Lock()
		defer trm.crit.Unlock()
		if show && !trm.visible {
			fmt.Fprint(trm.output, clearScreen, cursorHide)
			trm.pending = true
		}
		trm.visible = show

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

func (trm *TermPlay) sendEvent(ev userinput.Event) {
	trm.crit.Lock()
	ch := trm.events
	trm.crit.Unlock()

	if ch != nil && !gui.SendEvent(ch, ev) {
		logger.Logf(logger.Allow, "termplay", "event dropped: %T", ev)
	}
}
