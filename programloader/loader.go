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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/pkg/errors"
)

// Unreadable is the pattern for all errors returned by Load().
const Unreadable = "programloader: %v"

// timeout for http(s) requests.
const httpTimeout = 10 * time.Second

// Loader is used to specify the program to load into the machine.
type Loader struct {
	// filename or URL of the program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename, without the
// path or the file extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Data != nil
}

// Load the program data. Filenames with a URL scheme will use that method to
// load the data. Supported schemes are http, https and file. A filename with
// no scheme is a local file.
//
// Calling Load() once data has been loaded has no effect.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	pth := ld.Filename

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
		if scheme == "file" {
			pth = u.Path
		}
	}

	var data []uint8

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(ld.Filename)
	case "file":
		data, err = os.ReadFile(pth)
	default:
		err = errors.Errorf("unsupported URL scheme (%s)", scheme)
	}

	if err != nil {
		return curated.Errorf(Unreadable, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(Unreadable, errors.Errorf("unexpected hash value (%s)", hash))
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func loadHTTP(u string) ([]uint8, error) {
	client := http.Client{Timeout: httpTimeout}

	resp, err := client.Get(u)
	if err != nil {
		return nil, errors.Wrap(err, "http")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("http: %s", resp.Status)
	}

	// read one byte more than the largest program so that an oversized
	// image can be identified without reading all of it
	data, err := io.ReadAll(io.LimitReader(resp.Body, memory.MaxProgramSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "http")
	}
	if len(data) > memory.MaxProgramSize {
		return nil, errors.Errorf("http: program too large (more than %d bytes)", memory.MaxProgramSize)
	}

	return data, nil
}
