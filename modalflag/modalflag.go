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

package modalflag

import (
	"flag"
	"io"
	"os"
	"strings"
	"time"
)

// separator used when joining the modes found so far into a single string.
const pathSeparator = "/"

// Modes handles a command line that is made up of a series of modes, each
// with its own set of flags. Output is where help messages are written. If
// Output is nil then os.Stdout is used.
type Modes struct {
	Output io.Writer

	// flags for the current mode. replaced on every call to NewMode()
	flags *flag.FlagSet

	// the full argument list and the index of the first argument that has
	// not yet been consumed by a mode
	args []string
	next int

	// sub-modes that are acceptable for the current mode. the first entry
	// is the default
	subModes []string

	// every mode selected so far. never shortened
	path []string

	// extra text printed at the end of the help message for this mode
	help string

	parsed bool
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs starts a new parsing session with the supplied arguments. The
// program name should not be included.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode discards the flags and sub-modes of the previous mode. Flags and
// sub-modes added after this call apply to the next call to Parse().
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.help = ""
	md.parsed = false
}

// Mode returns the most recently selected mode. The empty string is returned
// if no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode joined with a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSeparator)
}

// Parsed is true if Parse() has been called since the last call to NewMode().
// An unsuccessful Parse() still counts.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// AdditionalHelp is printed after the list of flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddSubModes adds to the list of acceptable sub-modes. The first sub-mode
// ever added for a mode is the default. Comparison is not case sensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// the arguments for the mode were parsed. Mode() returns the selected
	// sub-mode if any were added
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the arguments could not be parsed. the error is also returned
	ParseError
)

func (r ParseResult) String() string {
	switch r {
	case ParseContinue:
		return "continue"
	case ParseHelp:
		return "help"
	case ParseError:
		return "error"
	}
	return "unknown"
}

// Parse the arguments for the current mode. If sub-modes have been added then
// the first argument following the flags selects the sub-mode. If that
// argument is not a sub-mode then the default sub-mode is selected and the
// argument is left for the next mode to consume.
//
// Unrecognised flags select the default sub-mode when there are sub-modes to
// choose from. The flags will be seen again when the sub-mode is parsed.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	output := md.Output
	if output == nil {
		output = os.Stdout
	}

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.next:])
	if err == flag.ErrHelp {
		hw.help(output, md.Path(), md.subModes, md.help)
		return ParseHelp, nil
	}

	if err != nil {
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	// flags for the parent mode have been consumed. the sub-mode argument, if
	// present, comes immediately after them
	md.next = len(md.args) - md.flags.NArg()

	selected := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, s := range md.subModes {
		if s == arg {
			selected = s
			md.next++
			break
		}
	}
	md.path = append(md.path, selected)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments following the flags of the most recent
// Parse().
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns a single argument from the list returned by RemainingArgs().
// The empty string is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// Visit calls fn for every flag that was set on the command line, in
// lexicographical order.
func (md *Modes) Visit(fn func(name string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
