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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gopher8/gopher8/curated"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while gopher8 is running ***"

// KeySep separates the key from the value on each line of a preferences
// file.
const KeySep = " :: "

// DefaultPrefsFile is the name of the preferences file used by the main
// application, relative to the resource path.
const DefaultPrefsFile = "preferences"

// Disk binds named preference values to a file on disk. Entries are added
// with Add() and the file is read and written with Load() and Save().
//
// Keys in the file that have not been added to the Disk instance are
// preserved when the file is saved. This means that more than one Disk
// instance can share the same file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: %v", "no path for preferences file")
	}

	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}

	return dsk, nil
}

// sortedKeys returns the keys of the map in alphabetical order.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range sortedKeys(dsk.entries) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to the disk instance. The key must not already have
// been used with the same instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, KeySep) || strings.TrimSpace(key) != key || key == "" {
		return curated.Errorf("prefs: %v", fmt.Errorf("illegal key (%q)", key))
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: %v", fmt.Errorf("key already added (%s)", key))
	}

	dsk.entries[key] = p

	return nil
}

// Reset all preference values in the disk instance to their zero values.
func (dsk *Disk) Reset() error {
	for _, k := range sortedKeys(dsk.entries) {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the preferences file into a map of strings. a missing file is not an
// error and results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boiler plate warning
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}

		data[spt[0]] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}

// Save current preference values to disk. Values in the file that do not
// belong to this instance are written back unchanged.
func (dsk *Disk) Save() (rerr error) {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range sortedKeys(data) {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Keys in the file that have not been added
// to the instance are ignored.
//
// If saveOnFail is true and the file does not exist then the current values
// are saved, creating the file.
//
// Values on the top of the command line stack take precedence over those
// found in the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	if _, err := os.Stat(dsk.path); os.IsNotExist(err) && saveOnFail {
		if err := dsk.Save(); err != nil {
			return err
		}
	}

	data, err := dsk.read()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for _, k := range sortedKeys(dsk.entries) {
		p := dsk.entries[k]

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}
