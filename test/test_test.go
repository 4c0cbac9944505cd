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

package test_test

import (
	"errors"
	"testing"

	"github.com/gopher8/gopher8/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint8(0xff), uint8(0x7f)<<1|1)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectSuccess(t, w.Compare(""))
	w.Write([]byte("foo"))
	w.Write([]byte("bar"))
	test.ExpectSuccess(t, w.Compare("foobar"))
	test.ExpectSuccess(t, w.Contains("oba"))
	test.ExpectFailure(t, w.Contains("baz"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
	test.ExpectEquality(t, len(w.Lines()), 0)

	w.Write([]byte("one\ntwo\n"))
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "one")
	test.ExpectEquality(t, lines[1], "two")
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.ExpectEquality(t, r.String(), "abcde")

	r.Write([]byte("fgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")

	// total written is now exactly the size of the ring
	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")

	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")

	r.Write([]byte("1234567890"))
	test.ExpectEquality(t, r.String(), "1234567890")

	// longer than the ring
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}
