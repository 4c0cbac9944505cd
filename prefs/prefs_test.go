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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/prefs"
	"github.com/gopher8/gopher8/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gopher8_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		t.Logf("expected:\n%s", expected)
		t.Logf("in file:\n%s", string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.ExpectFailure(t, v.Set(1))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions leave the value unchanged
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var scale prefs.Int
	var opengl prefs.Bool
	test.ExpectSuccess(t, dsk.Add("display.scale", &scale))
	test.ExpectSuccess(t, dsk.Add("display.opengl", &opengl))

	// file does not exist yet. saveOnFail creates it with the current values
	test.ExpectSuccess(t, scale.Set(16))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "display.opengl :: false\ndisplay.scale :: 16\n")

	test.ExpectSuccess(t, scale.Set(8))
	test.ExpectSuccess(t, opengl.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, scale.Get().(int), 0)
	test.ExpectEquality(t, opengl.Get().(bool), false)

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get().(int), 8)
	test.ExpectEquality(t, opengl.Get().(bool), true)
}

func TestLoadMissingFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(3))

	// a missing file is not an error and the value is unchanged
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 3)

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("number :: 10\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))

	err = dsk.Load(false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "prefs: %v"))
}

func TestAdd(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectFailure(t, dsk.Add("number", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a :: b", &v))
	test.ExpectEquality(t, dsk.String(), "number :: 0\n")

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

// write bool and then a string from a different prefs.Disk instance. the
// second write must not clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	// new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the maximum length does not bring back cropped information
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 1 {
			return fmt.Errorf("value too small")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(4))
	test.ExpectEquality(t, post, 4)

	// pre hook vetoes the change
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 4)
	test.ExpectEquality(t, post, 4)
}
