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
	"image/color"
	"strconv"
	"strings"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/paths"
	"github.com/gopher8/gopher8/prefs"
)

// Preferences for the front ends that draw the display.
type Preferences struct {
	dsk *prefs.Disk

	// each framebuffer pixel is drawn as a square of this many host pixels
	Scale prefs.Int

	// draw with OpenGL rather than with the SDL renderer
	OpenGL prefs.Bool

	// colours of set and unset pixels as "#rrggbb" strings
	Foreground prefs.String
	Background prefs.String
}

// Default preference values.
const (
	DefaultScale      = 16
	DefaultForeground = "#ffffff"
	DefaultBackground = "#000000"

	// the limits of the Scale preference
	MinScale = 1
	MaxScale = 32
)

// Sentinel errors for invalid preference values.
const (
	InvalidScale  = "gui: scale must be between %d and %d (%d)"
	InvalidColour = "gui: invalid colour (%s)"
)

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences returns preferences loaded from the default preferences
// file.
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

	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.opengl", &p.OpenGL)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.fg", &p.Foreground)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.bg", &p.Background)
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
// that is not attached to a file.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}

	p.Scale.SetHookPre(func(v prefs.Value) error {
		s := v.(int)
		if s < MinScale || s > MaxScale {
			return curated.Errorf(InvalidScale, MinScale, MaxScale, s)
		}
		return nil
	})

	colourCheck := func(v prefs.Value) error {
		_, err := ParseColour(v.(string))
		return err
	}
	p.Foreground.SetMaxLen(len(DefaultForeground))
	p.Foreground.SetHookPre(colourCheck)
	p.Background.SetMaxLen(len(DefaultBackground))
	p.Background.SetHookPre(colourCheck)

	p.SetDefaults()
	return p
}

// SetDefaults reverts all display preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Scale.Set(DefaultScale)
	p.OpenGL.Set(false)
	p.Foreground.Set(DefaultForeground)
	p.Background.Set(DefaultBackground)
}

// Load display preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save display preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Colours returns the foreground and background colours. Invalid values are
// replaced by the defaults.
func (p *Preferences) Colours() (fg color.RGBA, bg color.RGBA) {
	var err error
	fg, err = ParseColour(p.Foreground.String())
	if err != nil {
		fg, _ = ParseColour(DefaultForeground)
	}
	bg, err = ParseColour(p.Background.String())
	if err != nil {
		bg, _ = ParseColour(DefaultBackground)
	}
	return fg, bg
}

// ParseColour parses a colour of the form "#rrggbb". The leading hash is
// optional. The returned colour is opaque.
func ParseColour(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, curated.Errorf(InvalidColour, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, curated.Errorf(InvalidColour, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
