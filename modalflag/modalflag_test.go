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

package modalflag_test

import (
	"testing"

	"github.com/gopher8/gopher8/modalflag"
	"github.com/gopher8/gopher8/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestFlagsOnly(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-log", "-scale", "8", "pong.ch8", "extra"})
	log := md.AddBool("log", false, "echo log")
	scale := md.AddInt("scale", 16, "window scale")

	test.ExpectFailure(t, *log)
	test.ExpectEquality(t, *scale, 16)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")

	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, *scale, 8)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "pong.ch8")
	test.ExpectEquality(t, md.GetArg(2), "")

	var visited []string
	md.Visit(func(name string) {
		visited = append(visited, name)
	})
	test.ExpectEquality(t, len(visited), 2)
	test.ExpectEquality(t, visited[0], "log")
	test.ExpectEquality(t, visited[1], "scale")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-nosuchflag"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"performance", "-duration", "2s", "pong.ch8"})
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PERFORMANCE")

	md.NewMode()
	duration := md.AddString("duration", "5s", "run time")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *duration, "2s")
	test.ExpectEquality(t, md.GetArg(0), "pong.ch8")
	test.ExpectEquality(t, md.Path(), "PERFORMANCE")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"pong.ch8"})
	md.AddSubModes("run", "performance")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	// the argument was not a sub-mode so it is seen again by the next mode
	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "pong.ch8")
}

func TestDefaultSubModeWithFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-display", "none", "pong.ch8"})
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	display := md.AddString("display", "sdl", "front end")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *display, "none")
	test.ExpectEquality(t, md.GetArg(0), "pong.ch8")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestHelpFlagsModesAndAdditional(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n" +
		"\n" +
		"more help\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestHelpForSubMode(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"run", "-help"})
	md.AddSubModes("RUN")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available for RUN\n")
}
