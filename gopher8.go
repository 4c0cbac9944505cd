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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gopher8/gopher8/digest"
	"github.com/gopher8/gopher8/gui"
	"github.com/gopher8/gopher8/gui/sdlplay"
	"github.com/gopher8/gopher8/gui/termplay"
	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/hardware/govern"
	"github.com/gopher8/gopher8/hardware/preferences"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/modalflag"
	"github.com/gopher8/gopher8/paths"
	"github.com/gopher8/gopher8/performance"
	"github.com/gopher8/gopher8/prefs"
	"github.com/gopher8/gopher8/programloader"
	"github.com/gopher8/gopher8/statsview"
	"github.com/gopher8/gopher8/userinput"
	"github.com/gopher8/gopher8/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the default interrupt signal handling. used when the mode handles
	// interrupts itself so that it can end gracefully.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// how long the main thread sleeps when there is no GUI to service.
const idlePeriod = 5 * time.Millisecond

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var active GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if active != nil {
				active.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			if active != nil {
				active.Destroy(os.Stderr)
				active = nil
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				active = g
				sync.creation <- g
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if active != nil {
					active.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if active != nil {
				active.Service()
			} else {
				time.Sleep(idlePeriod)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

const keypadHelp = `The keypad is mapped to the host keyboard as follows:

  keypad    keyboard
  1 2 3 C   1 2 3 4
  4 5 6 D   Q W E R
  7 8 9 E   A S D F
  A 0 B F   Z X C V

ESCAPE ends the emulation and P pauses it.`

// list of front ends for the -display flag.
const (
	displaySDL  = "sdl"
	displayTerm = "term"
	displayNone = "none"
)

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	display := md.AddString("display", displaySDL, "front end: sdl, term, none")
	scale := md.AddInt("scale", 0, "pixel scaling (sdl only, overrides display.scale preference)")
	opengl := md.AddBool("opengl", false, "draw with OpenGL (sdl only, overrides display.opengl preference)")
	log := md.AddBool("log", false, "echo log to stdout")
	prefsFile := md.AddString("prefs", "", "preferences file (default is in the user configuration directory)")
	setPrefs := md.AddString("setprefs", "", "override preferences with 'key::value; key::value'")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	steps := md.AddInt("steps", 0, "run for the number of steps and print the display (display none only)")
	hash := md.AddString("hash", "", "expected sha1 hash of the program")
	md.AdditionalHelp(keypadHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	*display = strings.ToLower(*display)
	switch *display {
	case displaySDL, displayTerm, displayNone:
	default:
		return fmt.Errorf("unknown display (%s)", *display)
	}

	if *steps < 0 {
		return fmt.Errorf("steps must not be negative (%d)", *steps)
	}
	if *steps > 0 && *display != displayNone {
		return fmt.Errorf("-steps can only be used with -display %s", displayNone)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// echoing the log to the terminal would corrupt the terminal display
	if *log && *display != displayTerm {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
		defer statsview.Stop()
	}

	// flags that override preferences
	set := make(map[string]bool)
	md.Visit(func(name string) {
		set[name] = true
	})
	prefs.PushCommandLineStack(commandLinePrefs(set, *scale, *opengl, *setPrefs))
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher8", "unused preferences: %s", unused)
		}
	}()

	pth, err := preferencesPath(*prefsFile)
	if err != nil {
		return err
	}

	c8, err := newChip8(pth, *hash, md.GetArg(0))
	if err != nil {
		return err
	}

	if *display == displayNone {
		return runHeadless(c8, sync, *steps)
	}

	guiPrefs, err := gui.NewPreferencesFromFile(pth)
	if err != nil {
		return err
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		if *display == displayTerm {
			return termplay.NewTermPlay(os.Stdin, os.Stdout, "")
		}
		return sdlplay.NewSdlPlay(guiPrefs)
	}

	// wait for creator result
	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	return play(c8, scr, sync)
}

// the keypad is usable on the terminal even though it does not report key
// releases. the size of the event channel allows for several keys to be
// reported in one read of the terminal.
const eventQueueSize = 64

func play(c8 *hardware.Chip8, scr gui.GUI, sync *mainSync) error {
	events := make(chan userinput.Event, eventQueueSize)

	err := scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return err
	}

	err = c8.Display.AddPixelRenderer(scr)
	if err != nil {
		return err
	}
	defer c8.Display.RemovePixelRenderer(scr)

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	// interrupts end the emulation in the same way as the quit key
	sync.state <- stateRequest{req: reqNoIntSig}
	intr := make(chan os.Signal, 1)
	signal.Notify(intr, os.Interrupt)
	defer signal.Stop(intr)

	ctrl := &userinput.Controllers{}
	shown := govern.Running
	err = scr.SetFeature(gui.ReqState, shown)
	if err != nil {
		return err
	}

	err = c8.Run(func() (govern.State, error) {
		for done := false; !done; {
			select {
			case ev := <-events:
				if err := ctrl.HandleUserInput(ev, c8.Input); err != nil {
					return govern.Ending, err
				}
			case <-intr:
				ctrl.Quit = true
			default:
				done = true
			}
		}

		if ctrl.Quit {
			return govern.Ending, nil
		}

		state := govern.Running
		if ctrl.Paused {
			state = govern.Paused
		}
		if state != shown {
			shown = state
			logger.Logf(c8, "gopher8", "emulation %s", state)
			if err := scr.SetFeature(gui.ReqState, state); err != nil {
				return govern.Ending, err
			}
		}

		return state, nil
	})

	_ = scr.SetFeature(gui.ReqSetEventChan, nil)

	if endErr := c8.Display.End(); err == nil {
		err = endErr
	}

	return err
}

// runHeadless runs the emulation without a display. if steps is zero the
// emulation runs until interrupted. the final state of the display is
// printed.
func runHeadless(c8 *hardware.Chip8, sync *mainSync, steps int) error {
	dig := digest.NewVideo()
	err := c8.Display.AddPixelRenderer(dig)
	if err != nil {
		return err
	}
	defer c8.Display.RemovePixelRenderer(dig)

	if steps > 0 {
		err = c8.RunForSteps(steps, nil)
	} else {
		sync.state <- stateRequest{req: reqNoIntSig}
		intr := make(chan os.Signal, 1)
		signal.Notify(intr, os.Interrupt)
		defer signal.Stop(intr)

		brake := 0
		err = c8.Run(func() (govern.State, error) {
			brake++
			if brake >= hardware.PerformanceBrake {
				brake = 0
				select {
				case <-intr:
					return govern.Ending, nil
				default:
				}
			}
			return govern.Running, nil
		})
	}

	fmt.Print(c8.Display.Frame())
	fmt.Printf("%d instructions\n", c8.InstructionCount())
	fmt.Printf("display digest: %s (%d frames)\n", dig.Hash(), dig.Frames())

	return err
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	capped := md.AddBool("capped", false, fmt.Sprintf("pace the emulation at %d instructions per second", hardware.InstructionRate))
	profile := md.AddString("profile", "none", "run through profiler: cpu, mem, trace, all (comma separated)")
	log := md.AddBool("log", false, "echo log to stdout")
	prefsFile := md.AddString("prefs", "", "preferences file (default is in the user configuration directory)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	pth, err := preferencesPath(*prefsFile)
	if err != nil {
		return err
	}

	c8, err := newChip8(pth, "", md.GetArg(0))
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, c8, *capped, *duration)
}

// preferencesPath returns the preferences file to use. the empty string
// selects the default file in the user configuration directory.
func preferencesPath(prefsFile string) (string, error) {
	if prefsFile != "" {
		return prefsFile, nil
	}
	return paths.ResourcePath("", prefs.DefaultPrefsFile)
}

// newChip8 creates a machine using the preferences in the file and loads the
// program into it.
func newChip8(prefsFile string, hash string, filename string) (*hardware.Chip8, error) {
	hwPrefs, err := preferences.NewPreferencesFromFile(prefsFile)
	if err != nil {
		return nil, err
	}

	c8 := hardware.NewChip8(hwPrefs)

	ld := programloader.NewLoader(filename)
	ld.Hash = hash
	err = ld.Load()
	if err != nil {
		return nil, err
	}

	err = c8.Load(ld.Data)
	if err != nil {
		return nil, err
	}

	logger.Logf(c8, "gopher8", "%s (sha1 %s)", ld.ShortName(), ld.Hash)

	return c8, nil
}

// commandLinePrefs returns the preferences string for the command line
// preferences stack. flags are only included if they were set on the command
// line. preferences in extra take precedence.
func commandLinePrefs(set map[string]bool, scale int, opengl bool, extra string) string {
	var s []string
	if set["scale"] {
		s = append(s, fmt.Sprintf("display.scale::%d", scale))
	}
	if set["opengl"] {
		s = append(s, fmt.Sprintf("display.opengl::%v", opengl))
	}
	if extra != "" {
		s = append(s, extra)
	}
	return strings.Join(s, "; ")
}
