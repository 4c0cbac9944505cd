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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/pkg/errors"
)

// Profile specifies which profiles are to be generated by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}

	s := make([]string, 0, 3)
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "TRACE")
	}
	return strings.Join(s, ",")
}

// ParseProfileString converts a string (as used on the command line) to a
// Profile value. The string is a comma separated list of CPU, MEM and TRACE
// or one of ALL or NONE. Case insensitive.
func ParseProfileString(profile string) (Profile, error) {
	var p Profile

	for _, s := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "NONE", "":
		case "ALL":
			p |= ProfileAll
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile type (%s)", s)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function, generating the profiles specified
// by the Profile argument. The filenamePrefix argument is used to name the
// profile files, for example "performance_cpu.profile".
func RunProfiler(profile Profile, filenamePrefix string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenamePrefix))
		if err != nil {
			return errors.Wrap(err, "performance")
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = errors.Wrap(err, "performance")
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "performance")
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenamePrefix))
		if err != nil {
			return errors.Wrap(err, "performance")
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = errors.Wrap(err, "performance")
			}
		}()

		if err := trace.Start(f); err != nil {
			return errors.Wrap(err, "performance")
		}
		defer trace.Stop()
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		if err := memProfile(fmt.Sprintf("%s_mem.profile", filenamePrefix)); err != nil {
			return err
		}
	}

	return err
}

func memProfile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "performance")
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.Wrap(err, "performance")
	}

	return nil
}
