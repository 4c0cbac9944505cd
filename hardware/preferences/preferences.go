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

// Package preferences collates the preference values used by the hardware
// package.
package preferences

import (
	"github.com/gopher8/gopher8/paths"
	"github.com/gopher8/gopher8/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// log events from the hardware (program loading, unrecognised
	// instructions, etc.)
	Log prefs.Bool

	// seed for the random number source used by the RND instruction. a value
	// of zero means that the seed is taken from the current time
	RandSeed prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preference values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// location of the preferences file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := NewDefaultPreferences()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.log", &p.Log)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.randSeed", &p.RandSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns a Preferences instance with default values
// that is not attached to a file. Load() and Save() have no effect.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Log.Set(true)
	p.RandSeed.Set(0)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
