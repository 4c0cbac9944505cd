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

package programloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/programloader"
	"github.com/gopher8/gopher8/test"
)

var program = []uint8{0x00, 0xe0, 0x6a, 0x3c, 0xa5, 0x00, 0xd0, 0xa1}

func hash(data []uint8) string {
	return fmt.Sprintf("%x", sha1.Sum(data))
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scenario.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o600))

	ld := programloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "scenario")
	test.ExpectFailure(t, ld.HasLoaded())

	test.ExpectSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.Hash, hash(program))

	// file scheme
	ld = programloader.NewLoader("file://" + fn)
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))
}

func TestEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{}, 0o600))

	ld := programloader.NewLoader(fn)
	test.ExpectSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), 0)
}

func TestMissingFile(t *testing.T) {
	ld := programloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, programloader.Unreadable))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scenario.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o600))

	ld := programloader.NewLoader(fn)
	ld.Hash = hash(program)
	test.ExpectSuccess(t, ld.Load())

	ld = programloader.NewLoader(fn)
	ld.Hash = hash([]uint8{0x00})
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.Unreadable))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scenario.ch8" {
			http.NotFound(w, r)
			return
		}
		w.Write(program)
	}))
	defer srv.Close()

	ld := programloader.NewLoader(srv.URL + "/scenario.ch8")
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.ShortName(), "scenario")

	ld = programloader.NewLoader(srv.URL + "/missing.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.Unreadable))
}

func TestHTTPTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]uint8, memory.MaxProgramSize*4))
	}))
	defer srv.Close()

	ld := programloader.NewLoader(srv.URL + "/large.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.Unreadable))
	test.ExpectFailure(t, ld.HasLoaded())

	// the largest program is accepted
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]uint8, memory.MaxProgramSize))
	}))
	defer srv.Close()

	ld = programloader.NewLoader(srv.URL + "/largest.ch8")
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), memory.MaxProgramSize)
}

func TestUnsupportedScheme(t *testing.T) {
	ld := programloader.NewLoader("ftp://example.com/scenario.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.Unreadable))
}
